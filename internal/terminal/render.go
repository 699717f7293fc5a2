package terminal

// Drawing of one full frame: the window rows with an optional line-number
// gutter, the status bar, the prompt row and, depending on state, the intro
// splash and the debug log overlay.

import (
	"fmt"

	"king/internal/editor"
	"king/internal/grapheme"
)

// RenderOptions holds the parts of the configuration the renderer needs.
type RenderOptions struct {
	Version     string
	LineNumbers bool // Draw the line-number gutter.
	GutterWidth int  // Gutter columns, separator space included.
	DevMode     bool // Draw the debug log overlay.
	NumLogs     int  // Log lines shown in the overlay.
}

// Gutter returns the number of columns taken by the line-number gutter.
func (o RenderOptions) Gutter() int {
	if !o.LineNumbers {
		return 0
	}
	return max(o.GutterWidth, 0)
}

// Render draws the editor state onto s and flushes it.
func Render(s Screen, e *editor.Editor, opts RenderOptions) error {
	s.Clear()
	w, h := s.Size()
	winH, winW := e.Window().Size()
	gutter := opts.Gutter()
	statusY := winH
	promptY := winH + 1

	drawWindow(s, e, gutter, winH, min(gutter+winW, w))
	if e.Buffer().IsFresh() && e.Mode() == editor.ModeNormal {
		drawIntro(s, opts.Version, w, winH)
	}
	if opts.DevMode {
		drawDebugLog(s, e, w, winH, opts.NumLogs)
	}
	if statusY < h {
		drawStatusBar(s, e, w, statusY)
	}
	if promptY < h {
		drawPrompt(s, e, w, promptY)
	}

	if e.Mode() == editor.ModePrompt {
		s.SetCursor(min(e.Prompt().CursorX(), w-1), promptY)
	} else {
		y, x := e.Cursor()
		s.SetCursor(min(gutter+x, w-1), y)
	}
	return s.Flush()
}

func drawWindow(s Screen, e *editor.Editor, gutter, winH, maxX int) {
	view := e.Window().ContentView()
	scroll := e.Window().ScrollPos()
	for y := 0; y < winH; y++ {
		if y >= view.Height() {
			s.SetCell(0, y, "~", ColorEmptyLineMarker)
			continue
		}
		if gutter > 0 {
			num := fmt.Sprintf("%*d", gutter-1, scroll+y+1)
			drawText(s, 0, y, gutter, num, ColorGutterLineNumber)
		}
		drawText(s, gutter, y, maxX, view.Line(y), ColorDefault)
	}
}

func drawStatusBar(s Screen, e *editor.Editor, w, y int) {
	for x := 0; x < w; x++ {
		s.SetCell(x, y, " ", ColorStatusBar)
	}

	var modeColor ColorName
	switch e.Mode() {
	case editor.ModeInsert:
		modeColor = ColorInsertMode
	case editor.ModePrompt:
		modeColor = ColorPromptMode
	default:
		modeColor = ColorNormalMode
	}
	x := drawText(s, 0, y, w, " "+e.Mode().String()+" ", modeColor)

	_, col := e.Cursor()
	pos := fmt.Sprintf("%d,%d", e.Window().Row()+1, col+1)
	posX := max(w-grapheme.Width(pos)-1, 0)
	drawText(s, posX, y, w, pos, ColorStatusBar)

	b := e.Buffer()
	name, ok := b.Filename()
	if !ok {
		name = "[no file]"
	}
	x = drawText(s, x+1, y, posX-1, name, ColorStatusBar)
	if b.Modified() {
		drawText(s, x+1, y, posX-1, "[+]", ColorModified)
	}
}

func drawPrompt(s Screen, e *editor.Editor, w, y int) {
	p := e.Prompt()
	color := ColorDefault
	switch {
	case p.Error() != "":
		color = ColorError
	case p.Message() != "":
		color = ColorMessage
	}
	drawText(s, 0, y, w, p.Text(), color)
}

// drawIntro draws an informational box with version and basic commands,
// centered over the window area.
func drawIntro(s Screen, version string, w, winH int) {
	lines := []struct {
		text  string
		color ColorName
	}{
		{"king editor", ColorIntroTitle},
		{version, ColorIntroText},
		{"", ColorIntroText},
		{"Small modal text editor", ColorIntroText},
		{"", ColorIntroText},
		{" type  i                 to insert text", ColorIntroKey},
		{" type  :e <file><Enter>  to open a file", ColorIntroKey},
		{" type  :q<Enter>         to exit", ColorIntroKey},
	}
	if len(lines) > winH {
		return
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, grapheme.Width(line.text))
	}
	if maxLen > w {
		return
	}

	startX := (w - maxLen) / 2
	startY := (winH - len(lines)) / 2
	for i, line := range lines {
		// Center each line individually within the box.
		lineX := startX + (maxLen-grapheme.Width(line.text))/2
		drawText(s, lineX, startY+i, w, line.text, line.color)
	}
}

// drawDebugLog draws the most recent log entries over the bottom of the
// window area.
func drawDebugLog(s Screen, e *editor.Editor, w, winH, limit int) {
	msgs := e.Log().Messages()
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	rows := min(len(msgs)+1, winH)
	if rows < 1 {
		return
	}
	msgs = msgs[len(msgs)-(rows-1):]
	startY := winH - rows

	for y := startY; y < winH; y++ {
		for x := 0; x < w; x++ {
			s.SetCell(x, y, " ", ColorDebugWindow)
		}
	}
	title := "[DEBUG LOG]"
	drawText(s, max((w-len(title))/2, 0), startY, w, title, ColorDebugTitle)
	for i, msg := range msgs {
		drawText(s, 1, startY+1+i, w, msg, ColorDebugWindow)
	}
}

// drawText draws text starting at column x and returns the column after
// the last cluster drawn. Clusters that would cross maxX are not drawn.
func drawText(s Screen, x, y, maxX int, text string, color ColorName) int {
	for _, c := range grapheme.Graphemes(text) {
		if x+c.Width > maxX {
			break
		}
		cell := c.Text
		if cell == "\t" {
			cell = " "
		}
		s.SetCell(x, y, cell, color)
		x += c.Width
	}
	return x
}
