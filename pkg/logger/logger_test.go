package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupCapture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Initialize(Config{
		Level:  level,
		Format: "json",
		Output: &buf,
	})
	t.Cleanup(func() {
		Initialize(Config{Level: "info", Format: "console"})
	})
	return &buf
}

func TestLoggerEmitsAllLevels(t *testing.T) {
	buf := setupCapture(t, "debug")

	Debug("debug message", map[string]interface{}{"key": "dvalue"})
	Info("info message", map[string]interface{}{"count": 3})
	Warn("warn message")
	Error("error message", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"message":"debug message"`)
	assert.Contains(t, out, `"key":"dvalue"`)
	assert.Contains(t, out, `"message":"info message"`)
	assert.Contains(t, out, `"count":3`)
	assert.Contains(t, out, `"message":"warn message"`)
	assert.Contains(t, out, `"message":"error message"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"caller":`)
}

func TestLoggerRespectsLevel(t *testing.T) {
	buf := setupCapture(t, "warn")

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warn")

	out := buf.String()
	assert.NotContains(t, out, "hidden debug")
	assert.NotContains(t, out, "hidden info")
	assert.Contains(t, out, "visible warn")
}
