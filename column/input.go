package column

import (
	"io"
	"os"
)

// StdinMarker selects standard input in place of a file path.
const StdinMarker = "-"

// OpenInput opens path for reading, or returns stdin when path is empty or
// StdinMarker. Closing the reader returned for stdin is a no-op.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == StdinMarker {
		return io.NopCloser(stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return file, nil
}
