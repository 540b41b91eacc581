package logging

import (
	"bytes"
	"strings"
	"testing"
)

// TestParseLevel verifies the config strings map to levels with info as the
// fallback.
func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" error ", LevelError},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

// TestLoggerSeverityGate verifies entries below the configured level are
// dropped.
func TestLoggerSeverityGate(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("always %d", 3)

	out := buf.String()
	if strings.Contains(out, "DEBUG: hidden 1") {
		t.Errorf("expected debug suppressed, got %q", out)
	}
	if !strings.Contains(out, "INFO: shown 2") {
		t.Errorf("expected info line, got %q", out)
	}
	if !strings.Contains(out, "ERROR: always 3") {
		t.Errorf("expected error line, got %q", out)
	}
}

// TestLoggerErrorLevel verifies errors always pass the gate.
func TestLoggerErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)

	l.Infof("hidden")
	l.Errorf("boom")

	out := buf.String()
	if strings.Contains(out, "INFO:") {
		t.Errorf("expected info suppressed, got %q", out)
	}
	if !strings.Contains(out, "ERROR: boom") {
		t.Errorf("expected error line, got %q", out)
	}
}

// TestLoggerDebugLevel verifies debug lines appear when asked for.
func TestLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)

	l.Debugf("trace")
	if !strings.Contains(buf.String(), "DEBUG: trace") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
}

// TestNilLogger verifies a nil handle is safe to call.
func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Debugf("x")
	l.Infof("x")
	l.Errorf("x")
}
