package terminal

import "king/internal/editor"

// Run is the central loop that waits for and processes all user input. It
// returns once the editor stops running, on Ctrl-C in dev mode, or when the
// backend fails.
func Run(e *editor.Editor, b Backend, opts RenderOptions) error {
	for e.Running() {
		// Redraw the screen before waiting for the next event.
		if err := Render(b, e, opts); err != nil {
			return err
		}

		ev := b.PollEvent()
		switch ev.Type {
		case EventKey:
			e.HandleKey(ev.Key)
		case EventResize:
			e.Resize(ev.Height-1, ev.Width-opts.Gutter())
			e.Log().Addf("Terminal", "Resized to %dx%d", ev.Width, ev.Height)
		case EventCancel:
			if opts.DevMode {
				return nil
			}
		case EventError:
			return ev.Err
		}
	}
	return nil
}
