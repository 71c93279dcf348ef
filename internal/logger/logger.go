package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	flog "fortio.org/log"
)

// DefaultPath is the log file used when none is configured, relative to the working directory.
const DefaultPath = "logs/garage.txt"

// DefaultKeep is how many recent lines are held in memory for the HUD.
const DefaultKeep = 64

// Level tags a line.
type Level int

const (
	Info Level = iota
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger keeps the most recent lines in memory and appends every line to a file on disk.
// Lines are mirrored to stderr through fortio.org/log unless Quiet is set.
type Logger struct {
	mu    sync.Mutex
	path  string
	keep  int
	lines []string
	Quiet bool
	now   func() time.Time
}

// New returns a Logger writing to path (DefaultPath when empty) and ensures its directory exists.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, keep: DefaultKeep, now: time.Now}
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string {
	return l.path
}

// SetPath switches the output file. Lines already written stay where they are.
func (l *Logger) SetPath(path string) {
	if path == "" {
		return
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	l.mu.Lock()
	l.path = path
	l.mu.Unlock()
}

func (l *Logger) Infof(format string, args ...any)  { l.Log(Info, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.Log(Warn, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.Log(Error, fmt.Sprintf(format, args...)) }

// Log stamps line with the local time and level, stores it and appends it to the log file.
func (l *Logger) Log(level Level, line string) {
	if l == nil {
		return
	}
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + level.String() + " " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if over := len(l.lines) - l.keep; l.keep > 0 && over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	path := l.path
	l.mu.Unlock()

	if !l.Quiet {
		switch level {
		case Warn:
			flog.Warnf("%s", line)
		case Error:
			flog.Errf("%s", line)
		default:
			flog.Infof("%s", line)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns up to n of the most recent lines.
func (l *Logger) Last(n int) []string {
	if l == nil {
		return nil
	}
	lines := l.Lines()
	if n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return lines
}
