package window

// ContentView is the read-only projection of a window used for rendering.
// It reads through to the buffer, so it reflects the state at the time of
// each call.
type ContentView struct {
	w *Window
}

// ContentView returns the renderable view of the window.
func (w *Window) ContentView() ContentView {
	return ContentView{w: w}
}

// Height returns the number of rows that carry buffer lines.
func (v ContentView) Height() int {
	return min(v.w.height, v.w.buf.Len()-v.w.scrollPos)
}

// Line returns the text of viewport row i.
func (v ContentView) Line(i int) string {
	return v.w.buf.Line(i + v.w.scrollPos)
}
