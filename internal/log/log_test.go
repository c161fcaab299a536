// ABOUTME: Tests for the logging wrapper
// ABOUTME: Validates level filtering and redirected output

package log

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("GetLevel() = %v, want LevelDebug", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("GetLevel() = %v, want LevelError", GetLevel())
	}
}

func TestEnabled(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(slog.LevelWarn)
	if Enabled(LevelInfo) {
		t.Error("Info should be disabled at Warn level")
	}
	if !Enabled(LevelError) {
		t.Error("Error should be enabled at Warn level")
	}
}

func TestDebugFiltering(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel(LevelInfo)
	Debug("suppressed %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debug emitted at info level: %q", buf.String())
	}

	SetLevel(LevelDebug)
	Debug("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), "shown 2")
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel(LevelError + 4)
	Error("boom: %s", "surface")
	if !strings.Contains(buf.String(), "boom: surface") {
		t.Errorf("output = %q, want error line", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"WARN", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelInfo, true},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
