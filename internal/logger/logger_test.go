package logger

import (
	"os"
	"strings"
	"testing"
)

func TestLogfFormatsAndStamps(t *testing.T) {
	chdir(t, t.TempDir())
	l := New()
	l.Logf("spawned circle at (%.0f, %.0f)", 120.0, 45.0)

	lines := l.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !strings.HasSuffix(lines[0], "spawned circle at (120, 45)") {
		t.Errorf("line = %q, want formatted suffix", lines[0])
	}
	if !strings.HasPrefix(lines[0], "[") {
		t.Errorf("line missing timestamp prefix: %q", lines[0])
	}

	data, err := os.ReadFile(LogFilePath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "spawned circle at (120, 45)") {
		t.Errorf("file content = %q", data)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	chdir(t, t.TempDir())
	l := New()
	l.Log("first")

	lines := l.Lines()
	lines[0] = "mutated"
	if l.Lines()[0] == "mutated" {
		t.Error("Lines exposed internal storage")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
