package column

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrColumnOverflow = errors.New("column overflow")
	ErrEmptyDelimiter = errors.New("delimiter is empty")
	ErrNegativeColumn = errors.New("column must be non-negative")
)

// InputError is returned when the requested input file cannot be opened.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("%s: %v", e.Path, cause)
}

func (e *InputError) Unwrap() error { return e.Err }

// PatternError is returned when the delimiter cannot be turned into a
// separator pattern.
type PatternError struct {
	Delimiter string
	Err       error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid delimiter %q: %v", e.Delimiter, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// ReadError wraps an I/O failure while reading line Line.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failure to emit the value of line Line.
type WriteError struct {
	Line int
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write line %d: %v", e.Line, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
