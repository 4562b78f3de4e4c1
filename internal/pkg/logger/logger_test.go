package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStdLoggerQuietUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, false)
	log.Debug("cache miss", map[string]interface{}{"signature": "x"})
	log.Info("registered", nil)
	log.Warn("slow", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	log.Error("provider failed", errors.New("boom"), map[string]interface{}{"language": "python"})
	if !strings.Contains(buf.String(), "[ERROR] provider failed boom language=python") {
		t.Fatalf("unexpected error line: %q", buf.String())
	}
}

func TestStdLoggerSortsFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, true)
	log.Info("generated", map[string]interface{}{"count": 3, "cached": false})
	if !strings.Contains(buf.String(), "cached=false count=3") {
		t.Fatalf("fields not sorted: %q", buf.String())
	}
}
