package main

// Prints the built-in key bindings as a table, one line per mode and key.

import (
	"fmt"
	"io"
	"strings"

	"king/internal/editor"
)

// PrintKeys writes a summary table of every binding in k.
func PrintKeys(w io.Writer, k *editor.Keymap) {
	// Table header.
	fmt.Fprintf(w, "%-10s %-10s %s\n", "Mode", "Key", "Command")
	fmt.Fprintln(w, strings.Repeat("-", 50))

	for _, b := range k.Bindings() {
		fmt.Fprintf(w, "%-10s %-10s %s\n", b.Mode, b.Key, b.Command)
	}
}
