package terminal

import "fmt"

// DrawTheme draws one swatch row per theme color. It is used by the -colors
// flag to check how the theme looks in the current terminal.
func DrawTheme(s Screen, theme Theme) {
	s.Clear()
	w, h := s.Size()
	for i, name := range Names() {
		if i >= h-1 {
			break
		}
		c := theme.Get(name)
		label := fmt.Sprintf(" %-18s fg %3d  bg %3d ", name, c.Foreground, c.Background)
		drawText(s, 0, i, w, label, name)
	}
	drawText(s, 0, min(len(Names()), h-1), w, "Press any key to exit...", ColorDefault)
	s.HideCursor()
}
