package window

import "king/internal/grapheme"

// MoveCursor moves the cursor one grapheme (horizontally) or one line
// (vertically), scrolling the viewport when the cursor would leave it.
func (w *Window) MoveCursor(dir Direction) {
	switch dir {
	case Left:
		if w.curX > 0 {
			w.curX--
		}
		w.EnsureCursorNotInMiddleOfWidechar()
	case Right:
		c, ok := w.buf.GraphemeAt(w.Row(), w.curX)
		// The cursor never rests on or past the last column in Normal mode.
		if !ok || w.curX+c.Width >= w.lineWidth() {
			return
		}
		w.curX += c.Width
		if w.curX > w.width-1 {
			w.curX = w.width - 1
			w.EnsureCursorNotInMiddleOfWidechar()
		}
	case Up:
		w.up()
		w.EnsureCursorOverLine()
		w.EnsureCursorNotInMiddleOfWidechar()
	case Down:
		w.down()
		w.EnsureCursorOverLine()
		w.EnsureCursorNotInMiddleOfWidechar()
	}
}

// up moves the cursor one line up, scrolling when it is on the top row.
func (w *Window) up() {
	if w.curY > 0 {
		w.curY--
	} else if w.scrollPos > 0 {
		w.scrollPos--
	}
}

// down moves the cursor one line down, scrolling when it is on the bottom
// row, and never past the last line of the buffer.
func (w *Window) down() {
	w.curY++
	if w.curY > w.height-1 {
		w.curY = w.height - 1
		if w.scrollPos+w.height < w.buf.Len() {
			w.scrollPos++
		}
	}
	if w.Row() >= w.buf.Len() {
		w.curY = w.buf.Len() - 1 - w.scrollPos
	}
}

// EnsureCursorOverLine pulls the cursor back onto the last grapheme when it
// is at or past the end of the current line. Column memory is not kept
// across lines.
func (w *Window) EnsureCursorOverLine() {
	if w.curX < w.lineWidth() {
		return
	}
	if last, ok := grapheme.Last(w.line()); ok {
		w.curX = last.Col
	} else {
		w.curX = 0
	}
}

// EnsureCursorNotInMiddleOfWidechar moves the cursor to the start of a wide
// grapheme when it points into one.
func (w *Window) EnsureCursorNotInMiddleOfWidechar() {
	c, ok := w.buf.GraphemeAt(w.Row(), w.curX)
	if ok && c.Width > 1 {
		w.curX = c.Col
	}
}

// AdvanceCursor steps over the grapheme under the cursor without the
// end-of-line clamp used by MoveCursor. Insert mode allows the cursor to sit
// just past the last grapheme.
func (w *Window) AdvanceCursor() {
	if c, ok := w.buf.GraphemeAt(w.Row(), w.curX); ok {
		w.curX = c.End()
	}
}
