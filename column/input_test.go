package column

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenInputStdin(t *testing.T) {
	for _, path := range []string{"", StdinMarker} {
		rc, err := OpenInput(path, strings.NewReader("from stdin\n"))
		if err != nil {
			t.Fatalf("OpenInput(%q) error = %v", path, err)
		}
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("ReadAll error = %v", err)
		}
		if string(data) != "from stdin\n" {
			t.Errorf("OpenInput(%q) read %q", path, data)
		}
		if err := rc.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}
}

func TestOpenInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	if err := os.WriteFile(path, []byte("a b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rc, err := OpenInput(path, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("OpenInput() error = %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll error = %v", err)
	}
	if string(data) != "a b\n" {
		t.Errorf("read %q, want %q", data, "a b\n")
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := OpenInput(path, nil)
	var ie *InputError
	if !errors.As(err, &ie) {
		t.Fatalf("OpenInput() error = %v, want *InputError", err)
	}
	if ie.Path != path {
		t.Errorf("InputError.Path = %q, want %q", ie.Path, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
	if !strings.HasPrefix(err.Error(), path+": ") {
		t.Errorf("error %q does not start with the path", err)
	}
	if strings.Contains(err.Error(), "open ") {
		t.Errorf("error %q repeats the path error prefix", err)
	}
}
