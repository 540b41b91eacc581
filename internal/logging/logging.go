package logging

import (
	"io"
	"log"
	"strings"
)

// Level is the minimum severity a Logger lets through.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel maps a configuration string to a Level. Unknown values mean
// LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is an explicit, severity-gated handle around the standard logger.
// All methods are safe on a nil *Logger, which discards everything.
type Logger struct {
	level Level
	out   *log.Logger
}

// New returns a Logger writing prefixed lines to w, dropping entries below
// level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || l.level > LevelDebug {
		return
	}
	l.out.Printf("DEBUG: "+format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	if l == nil || l.level > LevelInfo {
		return
	}
	l.out.Printf("INFO: "+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.out.Printf("ERROR: "+format, args...)
}
