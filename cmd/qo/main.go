// Package main is the entry point for the qo CLI tool.
package main

import (
	"os"

	"github.com/quickopen/quickopen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
