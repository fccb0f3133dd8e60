package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.velt.ch/jplaunch/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+). If zerr's API changes, errors gracefully fall
// back to standard error handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	level  *slog.LevelVar
	output io.Writer
}

// New creates a new Logger writing to stderr at info level.
func New() *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{
		logger: slog.New(handler),
		level:  level,
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination. If w is nil, os.Stderr
// is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: l.level}))
}

// SetVerbose toggles debug-level output.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

// DebugEnabled reports whether debug output is active.
func (l *Logger) DebugEnabled() bool {
	return l.level.Level() <= slog.LevelDebug
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain rendered hierarchically.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	// Collect messages by traversing the error chain programmatically
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			// zerr error: get raw message without chain
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			// Standard error: append full Error() and stop
			messages = append(messages, current.Error())
			break
		}
	}

	var formattedLines []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formattedLines = append(formattedLines, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
		} else {
			if i == 1 {
				formattedLines = append(formattedLines, "", "  Caused by:")
			}
			formattedLines = append(formattedLines, "    → "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "      "+line)
			}
		}
	}

	l.logger.Error(strings.Join(formattedLines, "\n"))
}

var _ ports.Logger = (*Logger)(nil)
