package terminal

import (
	"errors"

	"king/internal/editor"
)

// ErrClosed is reported by a backend whose screen went away.
var ErrClosed = errors.New("terminal closed")

// Screen is the drawing surface the renderer writes to. Coordinates are
// display cells; a wide cluster occupies its own cell plus the ones to its
// right.
type Screen interface {
	Size() (width, height int)
	Clear()
	SetCell(x, y int, cluster string, color ColorName)
	SetCursor(x, y int)
	HideCursor()
	Flush() error
}

// EventType is the kind of an Event.
type EventType int

const (
	EventNone   EventType = iota // Input the editor does not handle.
	EventKey                     // A decoded key press.
	EventResize                  // The terminal changed size.
	EventCancel                  // Ctrl-C.
	EventError                   // The backend failed; Err is set.
)

// Event is a backend-neutral input event.
type Event struct {
	Type   EventType
	Key    editor.Key
	Width  int
	Height int
	Err    error
}

// Backend is a terminal library wrapped for the editor.
type Backend interface {
	Screen
	Init() error
	Close()
	PollEvent() Event
}
