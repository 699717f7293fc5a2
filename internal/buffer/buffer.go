package buffer

// Line storage for a single file. Lines are kept as UTF-8 strings; every
// positional edit is expressed either as a byte offset (for splicing) or as
// a display column that is translated to a byte offset through GraphemeAt.

import (
	"fmt"

	"king/internal/grapheme"
)

// Buffer represents an open file and its lines of text.
type Buffer struct {
	path     string   // Path to the file on disk, empty until loaded or saved.
	lines    []string // Never empty; a fresh buffer holds a single "" line.
	modified bool     // True if changes haven't been saved.
}

// New returns a fresh buffer: no path and a single empty line.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// Filename returns the associated path, if any.
func (b *Buffer) Filename() (string, bool) {
	return b.path, b.path != ""
}

// SetPath associates the buffer with a file without touching its lines.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// IsFresh reports whether the buffer is unnamed and holds one empty line.
func (b *Buffer) IsFresh() bool {
	return b.path == "" && len(b.lines) == 1 && b.lines[0] == ""
}

// Modified reports whether the buffer changed since it was last loaded or
// written.
func (b *Buffer) Modified() bool {
	return b.modified
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns line i. It panics if i is out of range.
func (b *Buffer) Line(i int) string {
	b.checkLine(i)
	return b.lines[i]
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// SetLine replaces the content of line i.
func (b *Buffer) SetLine(i int, text string) {
	b.checkLine(i)
	b.lines[i] = text
	b.modified = true
}

// LineWidth returns the display width of line i.
func (b *Buffer) LineWidth(i int) int {
	return grapheme.Width(b.Line(i))
}

// GraphemeAt returns the cluster of line y whose column span contains
// display column x. It reports false when x is negative or at/past the
// line's display width.
func (b *Buffer) GraphemeAt(y, x int) (grapheme.Cluster, bool) {
	return grapheme.At(b.Line(y), x)
}

// InsertAt splices text into line y at byte offset off.
func (b *Buffer) InsertAt(y, off int, text string) {
	line := b.Line(y)
	if off < 0 || off > len(line) {
		panic(fmt.Sprintf("buffer: offset %d out of range for line %d (len %d)", off, y, len(line)))
	}
	b.lines[y] = line[:off] + text + line[off:]
	b.modified = true
}

// Append adds text to the end of line y.
func (b *Buffer) Append(y int, text string) {
	b.InsertAt(y, len(b.Line(y)), text)
}

// AddLine inserts an empty line at pos; pos may equal Len() to append.
func (b *Buffer) AddLine(pos int) {
	if pos < 0 || pos > len(b.lines) {
		panic(fmt.Sprintf("buffer: cannot add line at %d (len %d)", pos, len(b.lines)))
	}
	b.lines = append(b.lines, "")
	copy(b.lines[pos+1:], b.lines[pos:])
	b.lines[pos] = ""
	b.modified = true
}

// BreakLine splits line y at byte offset x into two adjacent lines.
func (b *Buffer) BreakLine(y, x int) {
	line := b.Line(y)
	if x < 0 || x > len(line) {
		panic(fmt.Sprintf("buffer: offset %d out of range for line %d (len %d)", x, y, len(line)))
	}
	b.AddLine(y + 1)
	b.lines[y] = line[:x]
	b.lines[y+1] = line[x:]
}

// JoinLines appends line n+1 onto line n and removes line n+1.
func (b *Buffer) JoinLines(n int) {
	b.checkLine(n)
	b.checkLine(n + 1)
	b.lines[n] += b.lines[n+1]
	b.lines = append(b.lines[:n+1], b.lines[n+2:]...)
	b.modified = true
}

// DeleteCharAt removes the cluster at display column x of line y and
// returns it.
func (b *Buffer) DeleteCharAt(y, x int) (grapheme.Cluster, bool) {
	c, ok := b.GraphemeAt(y, x)
	if !ok {
		return grapheme.Cluster{}, false
	}
	line := b.lines[y]
	b.lines[y] = line[:c.Offset] + line[c.Offset+len(c.Text):]
	b.modified = true
	return c, true
}

func (b *Buffer) checkLine(i int) {
	if i < 0 || i >= len(b.lines) {
		panic(fmt.Sprintf("buffer: line %d out of range (len %d)", i, len(b.lines)))
	}
}
