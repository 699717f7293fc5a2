package logging

// In-memory debug log shown by the renderer in dev mode, optionally mirrored
// to a file. Entries are formatted as "[hh:mm:ss] [Group] message".

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Log keeps the most recent entries in memory.
type Log struct {
	messages []string
	max      int
	out      io.Writer
	now      func() time.Time
}

// New returns a log holding at most limit entries.
func New(limit int) *Log {
	if limit < 1 {
		limit = 1
	}
	return &Log{max: limit, now: time.Now}
}

// SetOutput mirrors every new entry to w.
func (l *Log) SetOutput(w io.Writer) {
	l.out = w
}

// OpenFile mirrors entries to the file at path, appending to it. The returned
// function closes the file.
func (l *Log) OpenFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.out = f
	return f.Close, nil
}

// Add records msg under group.
func (l *Log) Add(group, msg string) {
	if l == nil {
		return
	}
	t := l.now()
	logMsg := fmt.Sprintf("[%02d:%02d:%02d] [%s] %s", t.Hour(), t.Minute(), t.Second(), group, msg)
	l.messages = append(l.messages, logMsg)

	if len(l.messages) > l.max {
		l.messages = l.messages[len(l.messages)-l.max:]
	}

	if l.out != nil {
		fmt.Fprintln(l.out, logMsg)
	}
}

// Addf is Add with formatting.
func (l *Log) Addf(group, format string, args ...any) {
	l.Add(group, fmt.Sprintf(format, args...))
}

// Messages returns the retained entries, oldest first.
func (l *Log) Messages() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}
