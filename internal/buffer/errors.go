package buffer

import (
	"errors"
	"fmt"
)

// ErrNoFileName is returned when writing a buffer that has no path.
var ErrNoFileName = errors.New("no file name")

// IOError reports a failed load or save. A missing file on load is not an
// IOError.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
