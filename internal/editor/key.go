package editor

import "fmt"

// KeyKind is the logical class of a key press, independent of the terminal
// backend that decoded it.
type KeyKind int

const (
	KeyCharacter KeyKind = iota
	KeyEnter
	KeyEscape
	KeyBackspace
)

// Key is a decoded key press. Ch is set only for KeyCharacter.
type Key struct {
	Kind KeyKind
	Ch   rune
}

var (
	Enter     = Key{Kind: KeyEnter}
	Escape    = Key{Kind: KeyEscape}
	Backspace = Key{Kind: KeyBackspace}
)

// Char returns the key that produces r.
func Char(r rune) Key {
	return Key{Kind: KeyCharacter, Ch: r}
}

func (k Key) String() string {
	switch k.Kind {
	case KeyEnter:
		return "<Enter>"
	case KeyEscape:
		return "<Esc>"
	case KeyBackspace:
		return "<BS>"
	}
	switch k.Ch {
	case ' ':
		return "<Space>"
	case '\t':
		return "<Tab>"
	}
	return fmt.Sprintf("%c", k.Ch)
}
