package buffer

// Loading and saving buffers. The on-disk format is plain text: every line
// is written followed by "\n", and reading strips the terminator (and a
// trailing "\r") from each line.

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Load reads a file from disk into a new buffer. A file that does not exist
// yields a buffer with a single empty line associated with path.
func Load(path string) (*Buffer, error) {
	b := New()
	b.path = path

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	if err := b.ReadLines(file); err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return b, nil
}

// ReadLines replaces the buffer's lines with the content of r.
func (b *Buffer) ReadLines(r io.Reader) error {
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		if err == io.EOF && line == "" {
			break
		}

		// Remove trailing newline.
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)

		if err == io.EOF {
			break
		}
	}

	// Ensure buffer is never empty.
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = lines
	b.modified = false
	return nil
}

// WriteTo serializes every line followed by "\n".
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	writer := bufio.NewWriter(w)
	var n int64
	for _, line := range b.lines {
		m, err := writer.WriteString(line)
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, writer.Flush()
}

// Write saves the buffer to its associated path.
func (b *Buffer) Write() error {
	if b.path == "" {
		return ErrNoFileName
	}

	file, err := os.Create(b.path)
	if err != nil {
		return &IOError{Op: "create", Path: b.path, Err: err}
	}

	if _, err := b.WriteTo(file); err != nil {
		file.Close()
		return &IOError{Op: "write", Path: b.path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "close", Path: b.path, Err: err}
	}
	b.modified = false
	return nil
}
