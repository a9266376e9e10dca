package log

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(slog.LevelDebug)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(slog.LevelWarn)
	})

	DefaultLogger.With("section", "infer.unify").Debug("kept")
	DefaultLogger.With("section", "cmd").Debug("dropped")
	DefaultLogger.Debug("also kept", "section", "jsonlogic.parse")
	DefaultLogger.With("section", "cmd").Warn("warnings always pass")

	out := buf.String()
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "also kept")
	assert.Contains(t, out, "warnings always pass")
	assert.NotContains(t, out, "dropped")
}

func TestLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(slog.LevelError)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(slog.LevelWarn)
	})

	DefaultLogger.With("section", "infer").Info("too quiet")
	assert.Empty(t, buf.String())
}
