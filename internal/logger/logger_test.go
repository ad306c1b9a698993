package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written without debug: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug("delimiter compiled")

	if !strings.Contains(buf.String(), "delimiter compiled") {
		t.Errorf("debug record missing: %q", buf.String())
	}
}
