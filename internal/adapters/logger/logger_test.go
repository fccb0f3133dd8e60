package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/adapters/logger"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Debug("hidden at info level")
	assert.Empty(t, buf.String())

	l.Info("launching")
	assert.Contains(t, buf.String(), "launching")

	l.Warn("budget low")
	assert.Contains(t, buf.String(), "budget low")
}

func TestLogger_VerboseEnablesDebug(t *testing.T) {
	l, buf := newTestLogger(t)

	require.False(t, l.DebugEnabled())
	l.SetVerbose(true)
	require.True(t, l.DebugEnabled())

	l.Debug("path listing")
	assert.Contains(t, buf.String(), "path listing")

	l.SetVerbose(false)
	require.False(t, l.DebugEnabled())
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newTestLogger(t)

	base := zerr.New("dependency path does not exist")
	err := zerr.Wrap(base, "failed to build runtime path")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to build runtime path")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "dependency path does not exist")
}

func TestLogger_NilError(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(nil)
	assert.Empty(t, buf.String())
}
