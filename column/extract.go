// Package column selects a single delimiter-separated field from lines of
// tabular text.
package column

import (
	"fmt"
	"regexp"
)

// Options controls how the delimiter is turned into a separator pattern.
type Options struct {
	Delimiter string
	// Regex makes Delimiter an RE2 fragment instead of a literal string.
	Regex bool
}

// Extractor splits lines on one or more consecutive occurrences of a
// delimiter. It is immutable once compiled.
type Extractor struct {
	re *regexp.Regexp
}

// Compile builds an Extractor for opts. Runs of the delimiter anywhere in a
// line, including the ends, count as a single separator.
func Compile(opts Options) (*Extractor, error) {
	if opts.Delimiter == "" {
		return nil, &PatternError{Delimiter: opts.Delimiter, Err: ErrEmptyDelimiter}
	}

	fragment := opts.Delimiter
	if !opts.Regex {
		fragment = regexp.QuoteMeta(fragment)
	}

	re, err := regexp.Compile("(?:" + fragment + ")+")
	if err != nil {
		return nil, &PatternError{Delimiter: opts.Delimiter, Err: err}
	}
	return &Extractor{re: re}, nil
}

// Pattern returns the compiled separator expression.
func (e *Extractor) Pattern() string {
	return e.re.String()
}

// Extract returns field column of line, counting from 1. Column 0 returns
// the line unsplit.
func (e *Extractor) Extract(line string, column int) (string, error) {
	switch {
	case column < 0:
		return "", fmt.Errorf("%w: %d", ErrNegativeColumn, column)
	case column == 0:
		return line, nil
	}

	// column+1 pieces are enough: the last one holds the unscanned rest.
	fields := e.re.Split(line, column+1)
	if len(fields) < column {
		return "", fmt.Errorf("%w: column %d requested, line has %d fields", ErrColumnOverflow, column, len(fields))
	}
	return fields[column-1], nil
}

// Extract compiles delimiter as a literal and extracts column from line.
func Extract(line string, column int, delimiter string) (string, error) {
	ext, err := Compile(Options{Delimiter: delimiter})
	if err != nil {
		return "", err
	}
	return ext.Extract(line, column)
}
