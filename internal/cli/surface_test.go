package cli

import "testing"

func TestPaletteRegisterAndLookup(t *testing.T) {
	palette := newPaletteSurface()

	invoked := false
	err := palette.Register("quick-open-00000001", "Daily Note", func() error {
		invoked = true
		return nil
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	entry, ok := palette.Lookup("daily-note")
	if !ok {
		t.Fatalf("Lookup(daily-note) missed; names = %v", palette.Names())
	}
	if entry.display != "Daily Note" {
		t.Errorf("display = %q", entry.display)
	}
	if err := entry.invoke(); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if !invoked {
		t.Error("invoke did not run the registered handler")
	}
}

func TestPaletteRejectsDuplicateID(t *testing.T) {
	palette := newPaletteSurface()

	if err := palette.Register("x", "One", nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := palette.Register("x", "Two", nil); err == nil {
		t.Error("duplicate id accepted")
	}
	if got := len(palette.Names()); got != 1 {
		t.Errorf("names = %d after rejected register, want 1", got)
	}
}

func TestPaletteUnregister(t *testing.T) {
	palette := newPaletteSurface()

	if err := palette.Register("x", "Daily", nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := palette.Unregister("x"); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if _, ok := palette.Lookup("daily"); ok {
		t.Error("entry still addressable after unregister")
	}
	if err := palette.Unregister("x"); err == nil {
		t.Error("unregistering unknown id succeeded")
	}
}

func TestPaletteNamesOrder(t *testing.T) {
	palette := newPaletteSurface()

	displays := []string{"Zulu Note", "Alpha Note", "Mike Note"}
	for i, d := range displays {
		if err := palette.Register(string(rune('a'+i)), d, nil); err != nil {
			t.Fatalf("Register(%q): %v", d, err)
		}
	}

	want := []string{"zulu-note", "alpha-note", "mike-note"}
	got := palette.Names()
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPaletteLookupFirstMatchWins(t *testing.T) {
	palette := newPaletteSurface()

	// Two distinct files can slug to the same name; the earliest
	// registration is the one a bare name resolves to.
	if err := palette.Register("id-1", "Daily", nil); err != nil {
		t.Fatal(err)
	}
	if err := palette.Register("id-2", "daily", nil); err != nil {
		t.Fatal(err)
	}

	entry, ok := palette.Lookup("daily")
	if !ok {
		t.Fatal("Lookup missed")
	}
	if entry.id != "id-1" {
		t.Errorf("resolved id = %q, want id-1", entry.id)
	}
}
