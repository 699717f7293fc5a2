package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"king/internal/window"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		want Command
	}{
		{":quit", Quit()},
		{":q", Quit()},
		{":write", Write()},
		{":w", Write()},
		{":edit foo.txt", Edit("foo.txt")},
		{":e foo.txt", Edit("foo.txt")},
		{":edit  spaced.txt ", Edit("spaced.txt")},
		{":edit dir/with space.txt", Edit("dir/with space.txt")},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseCommand(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_NotFound(t *testing.T) {
	for _, text := range []string{":", ":foo", ":edit", ":e ", "quit", ":quitx", ":Quit"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseCommand(text)
			require.Error(t, err)

			var notFound *CommandNotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, text, notFound.Text)
			assert.Equal(t, "command not found: "+text, err.Error())
		})
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "quit", Quit().String())
	assert.Equal(t, "edit a.txt", Edit("a.txt").String())
	assert.Equal(t, "move down", Movement(window.Down).String())
	assert.Equal(t, "enter-prompt ':'", EnterPrompt(':').String())
	assert.Equal(t, "unknown", Command{Kind: CommandKind(-1)}.String())
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Enter, "<Enter>"},
		{Escape, "<Esc>"},
		{Backspace, "<BS>"},
		{Char(' '), "<Space>"},
		{Char('\t'), "<Tab>"},
		{Char('x'), "x"},
		{Char('😀'), "😀"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "NORMAL", ModeNormal.String())
	assert.Equal(t, "INSERT", ModeInsert.String())
	assert.Equal(t, "PROMPT", ModePrompt.String())
}
