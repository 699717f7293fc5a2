package terminal

import (
	"github.com/gdamore/tcell/v2"

	"king/internal/editor"
)

// Tcell draws through tcell. Selected with -backend tcell.
type Tcell struct {
	screen tcell.Screen
	theme  Theme
}

// NewTcell returns a tcell backend. When screen is nil a real terminal
// screen is opened by Init.
func NewTcell(screen tcell.Screen, theme Theme) *Tcell {
	return &Tcell{screen: screen, theme: theme}
}

func (t *Tcell) Init() error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		t.screen = s
	}
	return t.screen.Init()
}

func (t *Tcell) Close() { t.screen.Fini() }

func (t *Tcell) Size() (int, int) { return t.screen.Size() }

func (t *Tcell) Clear() { t.screen.Clear() }

func (t *Tcell) SetCell(x, y int, cluster string, color ColorName) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return
	}
	t.screen.SetContent(x, y, runes[0], runes[1:], tcellStyle(t.theme.Get(color)))
}

func (t *Tcell) SetCursor(x, y int) { t.screen.ShowCursor(x, y) }

func (t *Tcell) HideCursor() { t.screen.HideCursor() }

func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Tcell) PollEvent() Event {
	return decodeTcell(t.screen.PollEvent())
}

func tcellStyle(c Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.Foreground)).
		Background(tcellColor(c.Background)).
		Bold(c.Bold)
}

func tcellColor(n int) tcell.Color {
	if n <= 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(n - 1)
}

// decodeTcell turns a tcell event into an editor event. A nil event means
// the screen was finalized.
func decodeTcell(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventError, Err: ErrClosed}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return Event{Type: EventKey, Key: editor.Char(ev.Rune())}
		case tcell.KeyEnter:
			return Event{Type: EventKey, Key: editor.Enter}
		case tcell.KeyEscape:
			return Event{Type: EventKey, Key: editor.Escape}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Event{Type: EventKey, Key: editor.Backspace}
		case tcell.KeyTab:
			return Event{Type: EventKey, Key: editor.Char('\t')}
		case tcell.KeyCtrlC:
			return Event{Type: EventCancel}
		}
	}
	return Event{Type: EventNone}
}
