package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Info("hidden message")
	logger.Warningf("visible %d", 42)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Info message should be filtered at warning level: %q", out)
	}
	if !strings.Contains(out, "visible 42") || !strings.Contains(out, "[test]") {
		t.Errorf("Expected warning with module name, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("Debug message should pass at debug level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
		ok       bool
	}{
		{"debug", Debug, true},
		{"INFO", Info, true},
		{"warn", Warning, true},
		{"error", Error, true},
		{"verbose", Notice, false},
	}

	for _, tt := range tests {
		level, ok := ParseLevel(tt.name)
		if level != tt.expected || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; expected %v, %v", tt.name, level, ok, tt.expected, tt.ok)
		}
	}
}
