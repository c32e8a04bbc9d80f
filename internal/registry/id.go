package registry

import "fmt"

// idPrefix namespaces shortcut ids on the host command surface.
const idPrefix = "quick-open-"

// MakeID derives a stable shortcut id from a vault-relative file path.
//
// The id is a djb2 32-bit rolling hash rendered as fixed-width hex under
// the quick-open namespace. It is computed once at creation time and never
// recomputed, so a shortcut keeps its id (and any hotkey bound to it)
// across renames. Distinct paths colliding is possible but accepted: the
// host surface rejects the duplicate id and the second registration is
// silently dropped.
func MakeID(path string) string {
	var h uint32 = 5381
	for i := 0; i < len(path); i++ {
		h = h*33 + uint32(path[i])
	}
	return fmt.Sprintf("%s%08x", idPrefix, h)
}
