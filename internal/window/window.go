package window

// A Window shows a slice of one buffer through a fixed-size viewport and
// owns the cursor. The cursor is kept in viewport coordinates: curY is the
// row inside the viewport (the absolute line is scrollPos+curY) and curX is
// a display column that always sits on a grapheme boundary.

import "king/internal/buffer"

// Direction of a cursor movement.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Window is a viewport onto a buffer.
type Window struct {
	buf       *buffer.Buffer
	height    int // Viewport rows.
	width     int // Viewport columns.
	scrollPos int // Index of the topmost visible line.
	curY      int // Cursor row within the viewport.
	curX      int // Cursor display column.
}

// New creates a window of the given size showing buf.
func New(height, width int, buf *buffer.Buffer) *Window {
	if buf == nil {
		buf = buffer.New()
	}
	return &Window{
		buf:    buf,
		height: max(height, 1),
		width:  max(width, 1),
	}
}

// Buffer returns the displayed buffer.
func (w *Window) Buffer() *buffer.Buffer {
	return w.buf
}

// SetBuffer replaces the displayed buffer and moves the cursor and the
// scroll position back to the origin.
func (w *Window) SetBuffer(buf *buffer.Buffer) {
	w.buf = buf
	w.scrollPos = 0
	w.curY = 0
	w.curX = 0
}

// Size returns the viewport height and width.
func (w *Window) Size() (int, int) {
	return w.height, w.width
}

// Resize changes the viewport, keeping the cursor on the same line when it
// is still visible. A cursor just past the end of the line stays there, as
// Insert mode allows it.
func (w *Window) Resize(height, width int) {
	row := w.Row()
	w.height = max(height, 1)
	w.width = max(width, 1)
	if row-w.scrollPos >= w.height {
		w.scrollPos = row - w.height + 1
	}
	w.curY = row - w.scrollPos
	if w.curX > w.width-1 {
		w.curX = w.width - 1
	}
	w.EnsureCursorNotInMiddleOfWidechar()
}

// ScrollPos returns the index of the topmost visible line.
func (w *Window) ScrollPos() int {
	return w.scrollPos
}

// Cursor returns the cursor position in viewport coordinates (row, col).
func (w *Window) Cursor() (int, int) {
	return w.curY, w.curX
}

// Row returns the absolute buffer line under the cursor.
func (w *Window) Row() int {
	return w.scrollPos + w.curY
}

func (w *Window) line() string {
	return w.buf.Line(w.Row())
}

func (w *Window) lineWidth() int {
	return w.buf.LineWidth(w.Row())
}

// Write saves the displayed buffer.
func (w *Window) Write() error {
	return w.buf.Write()
}
