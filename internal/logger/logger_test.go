package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func quiet(t *testing.T) *Logger {
	t.Helper()
	l := New(filepath.Join(t.TempDir(), "logs", "test.txt"))
	l.Quiet = true
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local) }
	return l
}

func TestLogWritesFileAndMemory(t *testing.T) {
	l := quiet(t)
	l.Infof("Found mesh: %s", "Door_01")
	l.Errorf("load failed: %v", os.ErrNotExist)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if want := "[2026-01-02 03:04:05] INFO Found mesh: Door_01"; lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[1], "ERROR load failed") {
		t.Errorf("line = %q", lines[1])
	}
	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("file has %d lines, want 2", got)
	}
}

func TestLogKeepsRecentLines(t *testing.T) {
	l := quiet(t)
	l.keep = 3
	for i := 0; i < 5; i++ {
		l.Warnf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != 3 || !strings.HasSuffix(lines[0], "line 2") || !strings.HasSuffix(lines[2], "line 4") {
		t.Errorf("lines = %q", lines)
	}
	if last := l.Last(1); len(last) != 1 || !strings.HasSuffix(last[0], "line 4") {
		t.Errorf("Last(1) = %q", last)
	}
	if all := l.Last(10); len(all) != 3 {
		t.Errorf("Last(10) returned %d lines", len(all))
	}
}

func TestSetPath(t *testing.T) {
	l := quiet(t)
	next := filepath.Join(t.TempDir(), "other", "g.txt")
	l.SetPath(next)
	l.Infof("hello")
	if _, err := os.Stat(next); err != nil {
		t.Errorf("new log file not written: %v", err)
	}
	l.SetPath("")
	if l.Path() != next {
		t.Errorf("empty path changed the log file")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log(Info, "ignored")
}
