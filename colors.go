package main

// Draws the editor theme with the selected backend. This is useful for
// checking that the terminal supports the expected color range.

import "king/internal/terminal"

// PrintColors draws one swatch per theme color and waits for a key press.
func PrintColors(b terminal.Backend) error {
	if err := b.Init(); err != nil {
		return err
	}
	defer b.Close()

	terminal.DrawTheme(b, terminal.DefaultTheme)
	if err := b.Flush(); err != nil {
		return err
	}
	// Wait for any key press before closing.
	for {
		if ev := b.PollEvent(); ev.Type != terminal.EventResize && ev.Type != terminal.EventNone {
			return ev.Err
		}
	}
}
