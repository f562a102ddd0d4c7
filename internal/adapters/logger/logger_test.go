package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info("locked 2 packages")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "locked 2 packages")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Warn("cache write failed")

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLogger_Error(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(zerr.New("resolution failed"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "resolution failed")
}
