package editor

// The editor ties the window, the prompt and the keymap together. Every key
// goes through HandleKey: the keymap of the current mode is consulted first,
// unmapped keys get the mode's default behavior, and the resulting command
// runs to completion before HandleKey returns.

import (
	"errors"
	"fmt"
	"path/filepath"

	"king/internal/buffer"
	"king/internal/logging"
	"king/internal/prompt"
	"king/internal/window"
)

// Editor is the main controller struct that holds all editing state.
type Editor struct {
	mode    Mode                      // Current editor mode.
	running bool                      // False once :quit ran.
	height  int                       // Total rows, prompt row included.
	width   int                       // Total columns.
	window  *window.Window            // The single window.
	prompt  *prompt.Prompt            // Command line and feedback.
	keymap  *Keymap                   // Key bindings for every mode.
	buffers map[string]*buffer.Buffer // Buffers opened by path, keyed by canonical path.
	log     *logging.Log              // Debug log, may be nil.
}

// Option configures an Editor.
type Option func(*Editor)

// WithLog records editor activity in l.
func WithLog(l *logging.Log) Option {
	return func(e *Editor) { e.log = l }
}

// WithKeymap replaces the default bindings.
func WithKeymap(k *Keymap) Option {
	return func(e *Editor) { e.keymap = k }
}

// New creates an editor of the given size with a fresh buffer. The last row
// is reserved for the prompt.
func New(height, width int, opts ...Option) *Editor {
	e := &Editor{
		mode:    ModeNormal,
		running: true,
		height:  height,
		width:   width,
		prompt:  prompt.New(),
		keymap:  DefaultKeymap(),
		buffers: make(map[string]*buffer.Buffer),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.window = window.New(height-1, width, buffer.New())
	e.log.Add("Editor", "Editor initialized")
	return e
}

func (e *Editor) Mode() Mode { return e.mode }
func (e *Editor) Running() bool { return e.running }
func (e *Editor) Window() *window.Window { return e.window }
func (e *Editor) Prompt() *prompt.Prompt { return e.prompt }
func (e *Editor) Keymap() *Keymap { return e.keymap }
func (e *Editor) Log() *logging.Log { return e.log }
func (e *Editor) Size() (int, int) { return e.height, e.width }
func (e *Editor) Buffer() *buffer.Buffer { return e.window.Buffer() }

// Cursor returns the window cursor in viewport coordinates.
func (e *Editor) Cursor() (int, int) {
	return e.window.Cursor()
}

// Resize adapts the editor to a new terminal size.
func (e *Editor) Resize(height, width int) {
	e.height = height
	e.width = width
	e.window.Resize(height-1, width)
}

// HandleKey processes a single key press. Keys arriving after the editor
// stopped running are ignored.
func (e *Editor) HandleKey(k Key) {
	if !e.running {
		return
	}

	if cmd, ok := e.keymap.Lookup(e.mode, k); ok {
		e.run(cmd)
		return
	}

	switch e.mode {
	case ModeInsert:
		switch k.Kind {
		case KeyCharacter:
			e.window.AddChar(k.Ch)
		case KeyEnter:
			e.window.BreakLine()
		}
	case ModePrompt:
		if k.Kind == KeyCharacter {
			e.prompt.AddChar(k.Ch)
		}
	}
}

// run executes cmd and turns any failure into prompt feedback. This is the
// only place where command errors end up.
func (e *Editor) run(cmd Command) {
	if err := e.Execute(cmd); err != nil {
		e.displayError(err)
	}
}

// Execute runs cmd against the editor state.
func (e *Editor) Execute(cmd Command) error {
	switch cmd.Kind {
	case CmdQuit:
		e.running = false
		e.log.Add("Editor", "Quit")
	case CmdWrite:
		return e.write()
	case CmdEdit:
		return e.edit(cmd.Path)
	case CmdEnterPrompt:
		e.prompt.Start(cmd.Ch)
		e.setMode(ModePrompt)
	case CmdCancelPrompt:
		e.cancelPrompt()
	case CmdRunPrompt:
		return e.runPrompt()
	case CmdEnterInsert:
		e.setMode(ModeInsert)
	case CmdEnterInsertAfterCursor:
		e.window.AdvanceCursor()
		e.setMode(ModeInsert)
	case CmdOpenLineAfter:
		e.window.AddLineBelow()
		e.setMode(ModeInsert)
	case CmdOpenLineBefore:
		e.window.AddLineAbove()
		e.setMode(ModeInsert)
	case CmdLeaveInsert:
		e.window.EnsureCursorOverLine()
		e.setMode(ModeNormal)
	case CmdDeleteCharBeforeCursor:
		e.window.DeleteChar()
	case CmdDeleteCharBeforeCursorInPrompt:
		e.prompt.DeleteGrapheme()
		// Backspacing past the start of the prompt leaves it.
		if e.prompt.CommandText() == "" {
			e.cancelPrompt()
		}
	case CmdMovement:
		e.window.MoveCursor(cmd.Dir)
	default:
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
	return nil
}

func (e *Editor) setMode(m Mode) {
	if e.mode == m {
		return
	}
	e.log.Addf("Mode", "%s -> %s", e.mode, m)
	e.mode = m
}

func (e *Editor) cancelPrompt() {
	e.prompt.Clear()
	e.setMode(ModeNormal)
}

// runPrompt executes the text typed on the command line.
func (e *Editor) runPrompt() error {
	text := e.prompt.CommandText()
	e.cancelPrompt()
	if text == "" {
		return nil
	}

	cmd, err := ParseCommand(text)
	if err != nil {
		return err
	}
	e.log.Addf("Command", "%s", cmd)
	return e.Execute(cmd)
}

func (e *Editor) write() error {
	if err := e.window.Write(); err != nil {
		return err
	}
	name, _ := e.window.Buffer().Filename()
	e.prompt.DisplayMessage(fmt.Sprintf("\"%s\" written", name))
	e.log.Addf("File", "Wrote %s", name)
	return nil
}

// edit replaces the window's buffer with the one for path. A buffer that is
// already open with unsaved changes is reused; otherwise the file is read
// from disk again.
func (e *Editor) edit(path string) error {
	key := canonicalPath(path)
	b, ok := e.buffers[key]
	if !ok || !b.Modified() {
		loaded, err := buffer.Load(path)
		if err != nil {
			return err
		}
		b = loaded
		e.buffers[key] = b
		e.log.Addf("File", "Loaded %s (%d lines)", path, b.Len())
	} else {
		e.log.Addf("File", "Reusing modified buffer for %s", path)
	}

	e.window.SetBuffer(b)
	e.prompt.DisplayMessage(fmt.Sprintf("\"%s\"", path))
	return nil
}

func (e *Editor) displayError(err error) {
	msg := errorMessage(err)
	e.prompt.DisplayError(msg)
	e.log.Add("Error", msg)
}

// errorMessage converts an error into the text shown on the prompt row.
func errorMessage(err error) string {
	var notFound *CommandNotFoundError
	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("Command not found: %s", notFound.Text)
	case errors.Is(err, buffer.ErrNoFileName):
		return "No file name"
	}
	return fmt.Sprintf("Error: %v", err)
}

// canonicalPath resolves path so that different spellings of the same file
// share one buffer. A file that does not exist yet is keyed by its resolved
// directory, so it keeps the same key once :write creates it.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	dir, base := filepath.Split(abs)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return filepath.Join(resolved, base)
	}
	return abs
}
