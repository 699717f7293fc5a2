package prompt

// Single-line input and feedback surface shown at the bottom of the screen.
// It holds the colon-command text being typed and the transient message or
// error left behind by the last command.

import "king/internal/grapheme"

// Prompt is the command line.
type Prompt struct {
	text    string // Command text, including the trigger character.
	curX    int    // Cursor display column within text.
	message string // Informational feedback, shown instead of text.
	err     string // Error feedback, shown instead of message and text.
}

// New returns an empty prompt.
func New() *Prompt {
	return &Prompt{}
}

// Start clears the prompt and seeds it with the key that opened it.
func (p *Prompt) Start(r rune) {
	p.Clear()
	p.AddChar(r)
}

// Clear drops the command text and any feedback.
func (p *Prompt) Clear() {
	p.text = ""
	p.curX = 0
	p.message = ""
	p.err = ""
}

// AddChar appends r to the command text.
func (p *Prompt) AddChar(r rune) {
	before := grapheme.Width(p.text)
	p.text += string(r)
	p.curX += grapheme.Width(p.text) - before
}

// DeleteGrapheme removes the last grapheme of the command text. It reports
// whether anything was removed.
func (p *Prompt) DeleteGrapheme() bool {
	last, ok := grapheme.Last(p.text)
	if !ok {
		return false
	}
	p.text = p.text[:last.Offset]
	p.curX = last.Col
	return true
}

// CommandText returns the text typed so far.
func (p *Prompt) CommandText() string {
	return p.text
}

// CursorX returns the cursor display column.
func (p *Prompt) CursorX() int {
	return p.curX
}

// DisplayMessage sets informational feedback until the next Clear.
func (p *Prompt) DisplayMessage(text string) {
	p.message = text
}

// DisplayError sets error feedback until the next Clear.
func (p *Prompt) DisplayError(text string) {
	p.err = text
}

func (p *Prompt) Message() string { return p.message }

func (p *Prompt) Error() string { return p.err }

// Text returns what should be drawn on the prompt row.
func (p *Prompt) Text() string {
	switch {
	case p.err != "":
		return p.err
	case p.message != "":
		return p.message
	}
	return p.text
}
