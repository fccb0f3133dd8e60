package console_test

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adapter "go.velt.ch/jplaunch/internal/adapters/console"
	"go.velt.ch/jplaunch/internal/adapters/logger"
	"go.velt.ch/jplaunch/internal/engine/launcher"
)

func TestRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty is not supported on windows")
	}
	t.Setenv("NO_COLOR", "1")

	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	runner := adapter.NewRunner(log)

	var out bytes.Buffer
	code, err := runner.Run(t.Context(), []string{"echo", "hello"}, "", launcher.ChildEnvironment(nil), &out)

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestRunner_Run_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty is not supported on windows")
	}

	log := logger.New()
	log.SetOutput(&bytes.Buffer{})
	runner := adapter.NewRunner(log)

	code, err := runner.Run(t.Context(), []string{"sh", "-c", "exit 3"}, "", launcher.ChildEnvironment(nil), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestPipeRunner_Run_SeparatesStreams(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	log := logger.New()
	log.SetOutput(&bytes.Buffer{})
	runner := adapter.NewPipeRunner(log)

	var out, errOut bytes.Buffer
	code, err := runner.Run(t.Context(),
		[]string{"sh", "-c", "echo out; echo err >&2"},
		"", launcher.ChildEnvironment(nil), &out, &errOut)

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "out\n", out.String())
	assert.Equal(t, "err\n", errOut.String())
}

func TestPipeRunner_Run_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	log := logger.New()
	log.SetOutput(&bytes.Buffer{})
	runner := adapter.NewPipeRunner(log)

	code, err := runner.Run(t.Context(), []string{"sh", "-c", "exit 7"}, "", launcher.ChildEnvironment(nil), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	log := logger.New()
	log.SetOutput(&bytes.Buffer{})
	runner := adapter.NewRunner(log)

	_, err := runner.Run(t.Context(), nil, "", nil, nil)

	require.Error(t, err)
}
