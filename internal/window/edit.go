package window

import "king/internal/grapheme"

// AddLineAbove inserts an empty line before the cursor line and puts the
// cursor at its start.
func (w *Window) AddLineAbove() {
	w.buf.AddLine(w.Row())
	w.curX = 0
}

// AddLineBelow inserts an empty line after the cursor line and puts the
// cursor at its start.
func (w *Window) AddLineBelow() {
	w.buf.AddLine(w.Row() + 1)
	w.down()
	w.curX = 0
}

// AddChar inserts r at the cursor and moves the cursor past it. The
// inserted rune can merge with the cluster before or after it, so the cursor
// lands on the first cluster that starts after the inserted bytes.
func (w *Window) AddChar(r rune) {
	row := w.Row()
	off := len(w.line())
	if c, ok := w.buf.GraphemeAt(row, w.curX); ok {
		off = c.Offset
	}
	text := string(r)
	w.buf.InsertAt(row, off, text)

	w.curX = w.colAt(off + len(text))
}

// BreakLine splits the current line at the cursor; the cursor moves to the
// start of the new line.
func (w *Window) BreakLine() {
	row := w.Row()
	off := len(w.line())
	if c, ok := w.buf.GraphemeAt(row, w.curX); ok {
		off = c.Offset
	}
	w.buf.BreakLine(row, off)
	w.down()
	w.curX = 0
}

// DeleteChar removes the grapheme before the cursor. At the start of a line
// it joins the line into the previous one.
func (w *Window) DeleteChar() {
	if w.curX == 0 {
		row := w.Row()
		if row == 0 {
			return
		}
		joint := len(w.buf.Line(row - 1))
		w.buf.JoinLines(row - 1)
		w.up()
		w.curX = w.colAt(joint)
		return
	}

	if c, ok := w.buf.DeleteCharAt(w.Row(), w.curX-1); ok {
		w.curX = w.colAt(c.Offset)
	}
}

// colAt returns the column of the first cluster of the cursor line that
// starts at or after byte offset off, or the line width when there is none.
// Edits can merge neighbouring clusters, so offsets are the stable anchor.
func (w *Window) colAt(off int) int {
	for _, c := range grapheme.Graphemes(w.line()) {
		if c.Offset >= off {
			return c.Col
		}
	}
	return w.lineWidth()
}
