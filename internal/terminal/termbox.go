package terminal

import (
	"github.com/nsf/termbox-go"

	"king/internal/editor"
)

// Termbox draws through termbox-go. It is the default backend.
type Termbox struct {
	theme Theme
}

// NewTermbox returns a termbox backend drawing with theme.
func NewTermbox(theme Theme) *Termbox {
	return &Termbox{theme: theme}
}

func (t *Termbox) Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return nil
}

func (t *Termbox) Close() { termbox.Close() }

func (t *Termbox) Size() (int, int) { return termbox.Size() }

func (t *Termbox) Clear() {
	c := t.theme.Get(ColorDefault)
	termbox.Clear(termbox.Attribute(c.Foreground), termbox.Attribute(c.Background))
}

// SetCell draws the first rune of cluster. termbox keeps one rune per cell,
// so combining marks are dropped.
func (t *Termbox) SetCell(x, y int, cluster string, color ColorName) {
	fg, bg := termboxColor(t.theme.Get(color))
	for _, r := range cluster {
		termbox.SetCell(x, y, r, fg, bg)
		return
	}
}

func (t *Termbox) SetCursor(x, y int) { termbox.SetCursor(x, y) }

func (t *Termbox) HideCursor() { termbox.HideCursor() }

func (t *Termbox) Flush() error { return termbox.Flush() }

func (t *Termbox) PollEvent() Event {
	return decodeTermbox(termbox.PollEvent())
}

func termboxColor(c Color) (fg, bg termbox.Attribute) {
	fg = termbox.Attribute(c.Foreground)
	bg = termbox.Attribute(c.Background)
	if c.Bold {
		fg |= termbox.AttrBold
	}
	return fg, bg
}

// decodeTermbox turns a raw termbox event into an editor event.
func decodeTermbox(ev termbox.Event) Event {
	switch ev.Type {
	case termbox.EventKey:
		return decodeTermboxKey(ev)
	case termbox.EventResize:
		return Event{Type: EventResize, Width: ev.Width, Height: ev.Height}
	case termbox.EventError:
		return Event{Type: EventError, Err: ev.Err}
	}
	return Event{Type: EventNone}
}

func decodeTermboxKey(ev termbox.Event) Event {
	if ev.Key == 0 && ev.Ch != 0 {
		return Event{Type: EventKey, Key: editor.Char(ev.Ch)}
	}
	switch ev.Key {
	case termbox.KeyEnter:
		return Event{Type: EventKey, Key: editor.Enter}
	case termbox.KeyEsc:
		return Event{Type: EventKey, Key: editor.Escape}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return Event{Type: EventKey, Key: editor.Backspace}
	case termbox.KeySpace:
		return Event{Type: EventKey, Key: editor.Char(' ')}
	case termbox.KeyTab:
		return Event{Type: EventKey, Key: editor.Char('\t')}
	case termbox.KeyCtrlC:
		return Event{Type: EventCancel}
	}
	return Event{Type: EventNone}
}
