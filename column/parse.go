package column

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseColumns reads r line by line and passes the selected column of each
// line to emit, in input order. The first extraction, read or emit failure
// stops the pass; values already emitted are not revoked.
func ParseColumns(r io.Reader, column int, ext *Extractor, emit func(string) error) error {
	reader := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return &ReadError{Line: n, Err: err}
		}
		if line == "" && err != nil {
			return nil
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		value, xerr := ext.Extract(line, column)
		if xerr != nil {
			return fmt.Errorf("line %d: %w", n, xerr)
		}
		if werr := emit(value); werr != nil {
			return &WriteError{Line: n, Err: werr}
		}

		if err != nil {
			return nil
		}
	}
}

// Run writes the selected column of every line in r to w, each followed by
// separator, and returns how many lines were written.
func Run(r io.Reader, w io.Writer, column int, ext *Extractor, separator string) (int, error) {
	emitted := 0
	err := ParseColumns(r, column, ext, func(value string) error {
		if _, err := io.WriteString(w, value+separator); err != nil {
			return err
		}
		emitted++
		return nil
	})
	return emitted, err
}
