package editor

import (
	"sort"

	"king/internal/window"
)

type binding struct {
	mode Mode
	key  Key
}

// Binding is a single entry of a Keymap.
type Binding struct {
	Mode    Mode
	Key     Key
	Command Command
}

// Keymap maps a key pressed in a given mode to a command. Keys without a
// binding fall through to the mode's default behavior.
type Keymap struct {
	bindings map[binding]Command
}

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[binding]Command)}
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	k := NewKeymap()

	k.Bind(ModeNormal, Char(':'), EnterPrompt(':'))
	k.Bind(ModeNormal, Char('i'), EnterInsert())
	k.Bind(ModeNormal, Char('a'), EnterInsertAfterCursor())
	k.Bind(ModeNormal, Char('o'), OpenLineAfter())
	k.Bind(ModeNormal, Char('O'), OpenLineBefore())
	k.Bind(ModeNormal, Char('h'), Movement(window.Left))
	k.Bind(ModeNormal, Char('j'), Movement(window.Down))
	k.Bind(ModeNormal, Char('k'), Movement(window.Up))
	k.Bind(ModeNormal, Char('l'), Movement(window.Right))

	k.Bind(ModeInsert, Escape, LeaveInsert())
	k.Bind(ModeInsert, Backspace, DeleteCharBeforeCursor())

	k.Bind(ModePrompt, Escape, CancelPrompt())
	k.Bind(ModePrompt, Enter, RunPrompt())
	k.Bind(ModePrompt, Backspace, DeleteCharBeforeCursorInPrompt())

	return k
}

// Bind maps key in mode to cmd, replacing any previous binding.
func (k *Keymap) Bind(mode Mode, key Key, cmd Command) {
	k.bindings[binding{mode: mode, key: key}] = cmd
}

// Unbind removes the binding of key in mode.
func (k *Keymap) Unbind(mode Mode, key Key) {
	delete(k.bindings, binding{mode: mode, key: key})
}

// Lookup returns the command bound to key in mode.
func (k *Keymap) Lookup(mode Mode, key Key) (Command, bool) {
	cmd, ok := k.bindings[binding{mode: mode, key: key}]
	return cmd, ok
}

// Bindings lists every binding ordered by mode, then key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for b, cmd := range k.bindings {
		out = append(out, Binding{Mode: b.mode, Key: b.key, Command: cmd})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mode != out[j].Mode {
			return out[i].Mode < out[j].Mode
		}
		if out[i].Key.Kind != out[j].Key.Kind {
			return out[i].Key.Kind < out[j].Key.Kind
		}
		return out[i].Key.Ch < out[j].Key.Ch
	})
	return out
}
