package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"king/internal/window"
)

func TestDefaultKeymap(t *testing.T) {
	k := DefaultKeymap()

	tests := []struct {
		mode Mode
		key  Key
		want Command
	}{
		{ModeNormal, Char(':'), EnterPrompt(':')},
		{ModeNormal, Char('i'), EnterInsert()},
		{ModeNormal, Char('a'), EnterInsertAfterCursor()},
		{ModeNormal, Char('o'), OpenLineAfter()},
		{ModeNormal, Char('O'), OpenLineBefore()},
		{ModeNormal, Char('h'), Movement(window.Left)},
		{ModeNormal, Char('j'), Movement(window.Down)},
		{ModeNormal, Char('k'), Movement(window.Up)},
		{ModeNormal, Char('l'), Movement(window.Right)},
		{ModeInsert, Escape, LeaveInsert()},
		{ModeInsert, Backspace, DeleteCharBeforeCursor()},
		{ModePrompt, Escape, CancelPrompt()},
		{ModePrompt, Enter, RunPrompt()},
		{ModePrompt, Backspace, DeleteCharBeforeCursorInPrompt()},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+" "+tt.key.String(), func(t *testing.T) {
			got, ok := k.Lookup(tt.mode, tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Len(t, k.Bindings(), len(tests))
}

func TestKeymap_Unbound(t *testing.T) {
	k := DefaultKeymap()

	for _, tc := range []struct {
		mode Mode
		key  Key
	}{
		{ModeNormal, Enter},
		{ModeNormal, Char('x')},
		{ModeInsert, Char('i')},
		{ModeInsert, Enter},
		{ModePrompt, Char('q')},
	} {
		_, ok := k.Lookup(tc.mode, tc.key)
		assert.False(t, ok, "%s %s", tc.mode, tc.key)
	}
}

func TestKeymap_BindUnbind(t *testing.T) {
	k := NewKeymap()
	assert.Empty(t, k.Bindings())

	k.Bind(ModeNormal, Char('q'), Quit())
	cmd, ok := k.Lookup(ModeNormal, Char('q'))
	require.True(t, ok)
	assert.Equal(t, Quit(), cmd)

	k.Bind(ModeNormal, Char('q'), Write())
	cmd, _ = k.Lookup(ModeNormal, Char('q'))
	assert.Equal(t, Write(), cmd)

	k.Unbind(ModeNormal, Char('q'))
	_, ok = k.Lookup(ModeNormal, Char('q'))
	assert.False(t, ok)
}

func TestKeymap_BindingsOrder(t *testing.T) {
	k := NewKeymap()
	k.Bind(ModePrompt, Enter, RunPrompt())
	k.Bind(ModeNormal, Char('l'), Movement(window.Right))
	k.Bind(ModeInsert, Escape, LeaveInsert())
	k.Bind(ModeNormal, Char('h'), Movement(window.Left))
	k.Bind(ModeNormal, Escape, CancelPrompt())

	got := k.Bindings()
	require.Len(t, got, 5)
	assert.Equal(t, Binding{ModeNormal, Char('h'), Movement(window.Left)}, got[0])
	assert.Equal(t, Binding{ModeNormal, Char('l'), Movement(window.Right)}, got[1])
	assert.Equal(t, Binding{ModeNormal, Escape, CancelPrompt()}, got[2])
	assert.Equal(t, Binding{ModeInsert, Escape, LeaveInsert()}, got[3])
	assert.Equal(t, Binding{ModePrompt, Enter, RunPrompt()}, got[4])
}
