package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, min Level) writerLogger {
	return writerLogger{
		w:   buf,
		min: min,
		now: func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
}

func TestWriterLoggerFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelWarn)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)

	assert.Equal(t, "2026-01-02T03:04:05Z WARN  shown\n", buf.String())
}

func TestWriterLoggerEncodesObject(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug)

	l.Debug("request", map[string]any{"turns": 2})

	assert.Equal(t, "2026-01-02T03:04:05Z DEBUG request obj={\"turns\":2}\n", buf.String())
}

func TestWriterLoggerFallsBackForUnencodableObject(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug)

	l.Error("bad", map[string]any{"ch": make(chan int)})

	assert.Contains(t, buf.String(), "ERROR bad obj=")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for name, want := range cases {
		got, ok := ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	got, ok := ParseLevel("loud")
	assert.False(t, ok)
	assert.Equal(t, LevelWarn, got)
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, OrNop(nil))

	var buf bytes.Buffer
	_, isNop := OrNop(NewWriterLogger(&buf, LevelInfo)).(NopLogger)
	assert.False(t, isNop)
}
