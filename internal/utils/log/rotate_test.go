package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRotateWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")

	w, err := NewRotateWriter(path, "64B", 2)
	if err != nil {
		t.Fatalf("NewRotateWriter() failed: %v", err)
	}
	defer w.Close()

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	line := strings.Repeat("x", 39) + "\n"
	for i := 0; i < 5; i++ {
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	var rotated int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug.log.") {
			rotated++
		}
	}
	if rotated != 2 {
		t.Errorf("rotated files = %d, want 2", rotated)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if string(content) != line {
		t.Errorf("current log = %q, want a single line", content)
	}
}

func TestRotateWriterInvalidSize(t *testing.T) {
	if _, err := NewRotateWriter(filepath.Join(t.TempDir(), "debug.log"), "lots", 1); err == nil {
		t.Fatal("Expected error for invalid size")
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{"warn", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"loud", InfoLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewWritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	logger, closer := New(UseRotatingFile(path, "1MB", 1), UseLevel(DebugLevel))
	logger.Debug("loaded history", "records", 4)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(content), "loaded history") || !strings.Contains(string(content), "records=4") {
		t.Errorf("log content = %q", content)
	}
}
