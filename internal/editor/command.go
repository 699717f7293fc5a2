package editor

// Commands are the only way the editor state changes. Keys are bound to
// commands through the Keymap, and the colon prompt parses its text into
// one of the I/O commands (quit, write, edit).

import (
	"fmt"
	"strings"

	"king/internal/window"
)

// CommandKind identifies a command.
type CommandKind int

const (
	CmdQuit CommandKind = iota
	CmdWrite
	CmdEdit
	CmdEnterPrompt
	CmdCancelPrompt
	CmdRunPrompt
	CmdEnterInsert
	CmdEnterInsertAfterCursor
	CmdOpenLineAfter
	CmdOpenLineBefore
	CmdLeaveInsert
	CmdDeleteCharBeforeCursor
	CmdDeleteCharBeforeCursorInPrompt
	CmdMovement
)

// Command is a tagged value: Path is used by CmdEdit, Ch by CmdEnterPrompt
// and Dir by CmdMovement.
type Command struct {
	Kind CommandKind
	Path string
	Ch   rune
	Dir  window.Direction
}

func Quit() Command { return Command{Kind: CmdQuit} }
func Write() Command { return Command{Kind: CmdWrite} }
func Edit(path string) Command { return Command{Kind: CmdEdit, Path: path} }
func EnterPrompt(r rune) Command { return Command{Kind: CmdEnterPrompt, Ch: r} }
func CancelPrompt() Command { return Command{Kind: CmdCancelPrompt} }
func RunPrompt() Command { return Command{Kind: CmdRunPrompt} }
func EnterInsert() Command { return Command{Kind: CmdEnterInsert} }
func EnterInsertAfterCursor() Command { return Command{Kind: CmdEnterInsertAfterCursor} }
func OpenLineAfter() Command { return Command{Kind: CmdOpenLineAfter} }
func OpenLineBefore() Command { return Command{Kind: CmdOpenLineBefore} }
func LeaveInsert() Command { return Command{Kind: CmdLeaveInsert} }
func DeleteCharBeforeCursor() Command { return Command{Kind: CmdDeleteCharBeforeCursor} }
func DeleteCharBeforeCursorInPrompt() Command { return Command{Kind: CmdDeleteCharBeforeCursorInPrompt} }
func Movement(dir window.Direction) Command { return Command{Kind: CmdMovement, Dir: dir} }

func (c Command) String() string {
	switch c.Kind {
	case CmdQuit:
		return "quit"
	case CmdWrite:
		return "write"
	case CmdEdit:
		return "edit " + c.Path
	case CmdEnterPrompt:
		return fmt.Sprintf("enter-prompt %q", c.Ch)
	case CmdCancelPrompt:
		return "cancel-prompt"
	case CmdRunPrompt:
		return "run-prompt"
	case CmdEnterInsert:
		return "enter-insert"
	case CmdEnterInsertAfterCursor:
		return "enter-insert-after-cursor"
	case CmdOpenLineAfter:
		return "open-line-after"
	case CmdOpenLineBefore:
		return "open-line-before"
	case CmdLeaveInsert:
		return "leave-insert"
	case CmdDeleteCharBeforeCursor:
		return "delete-char-before-cursor"
	case CmdDeleteCharBeforeCursorInPrompt:
		return "delete-char-before-cursor-in-prompt"
	case CmdMovement:
		return "move " + c.Dir.String()
	}
	return "unknown"
}

// ParseCommand turns colon-prompt text into a command. The first word
// selects the command; :edit takes the rest of the line as its path.
func ParseCommand(text string) (Command, error) {
	name, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":quit", ":q":
		return Quit(), nil
	case ":write", ":w":
		return Write(), nil
	case ":edit", ":e":
		if arg == "" {
			return Command{}, &CommandNotFoundError{Text: text}
		}
		return Edit(arg), nil
	}
	return Command{}, &CommandNotFoundError{Text: text}
}

// CommandNotFoundError is returned for prompt text that names no command.
type CommandNotFoundError struct {
	Text string
}

func (e *CommandNotFoundError) Error() string {
	return "command not found: " + e.Text
}
