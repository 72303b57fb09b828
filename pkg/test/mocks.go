package test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"snapcheck/pkg/log"
)

// MockCommandRunner is a shared mock implementation of runner.CommandRunner
// for testing. It tracks executed commands and allows setting up responses
// and errors keyed by the full command line.
type MockCommandRunner struct {
	Calls     []string          // Executed command lines, in order
	Responses map[string][]byte // Stdout by command line
	Errors    map[string]error  // Error by command line
}

// NewMockCommandRunner creates a new MockCommandRunner with initialized maps.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Calls:     []string{},
		Responses: make(map[string][]byte),
		Errors:    make(map[string]error),
	}
}

// Key builds the lookup key for a command and its arguments.
func Key(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// Run simulates running a command and returns the configured response or error.
func (r *MockCommandRunner) Run(name string, args ...string) ([]byte, error) {
	key := Key(name, args...)
	r.Calls = append(r.Calls, key)

	if err, ok := r.Errors[key]; ok {
		return nil, err
	}
	if resp, ok := r.Responses[key]; ok {
		return resp, nil
	}
	return nil, fmt.Errorf("no mock response for %q", key)
}

// SetResponse configures the stdout for a specific command line.
func (r *MockCommandRunner) SetResponse(name string, args []string, response []byte) {
	r.Responses[Key(name, args...)] = response
}

// SetError configures an error for a specific command line.
func (r *MockCommandRunner) SetError(name string, args []string, err error) {
	r.Errors[Key(name, args...)] = err
}

// Reset clears all tracked calls and configurations.
func (r *MockCommandRunner) Reset() {
	r.Calls = []string{}
	r.Responses = make(map[string][]byte)
	r.Errors = make(map[string]error)
}

// MockLogger is a shared mock implementation of Logger for testing.
// It captures logged messages for verification.
type MockLogger struct {
	Messages []string
	Level    slog.Level
}

// NewMockLogger creates a new MockLogger with the specified level.
func NewMockLogger(level slog.Level) *MockLogger {
	return &MockLogger{
		Messages: []string{},
		Level:    level,
	}
}

// Debug captures debug messages.
func (l *MockLogger) Debug(msg string, args ...any) {
	if l.Level <= slog.LevelDebug {
		l.captureMessage("DEBUG", msg, args...)
	}
}

// Info captures info messages.
func (l *MockLogger) Info(msg string, args ...any) {
	if l.Level <= slog.LevelInfo {
		l.captureMessage("INFO", msg, args...)
	}
}

// Warn captures warn messages.
func (l *MockLogger) Warn(msg string, args ...any) {
	if l.Level <= slog.LevelWarn {
		l.captureMessage("WARN", msg, args...)
	}
}

// Error captures error messages.
func (l *MockLogger) Error(msg string, args ...any) {
	if l.Level <= slog.LevelError {
		l.captureMessage("ERROR", msg, args...)
	}
}

func (l *MockLogger) captureMessage(level, msg string, args ...any) {
	buf := &bytes.Buffer{}
	buf.WriteString(level)
	buf.WriteString(": ")
	buf.WriteString(msg)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			buf.WriteString(" ")
			buf.WriteString(fmt.Sprintf("%v", args[i]))
			buf.WriteString("=")
			buf.WriteString(fmt.Sprintf("%v", args[i+1]))
		}
	}
	l.Messages = append(l.Messages, buf.String())
}

// Reset clears all captured messages.
func (l *MockLogger) Reset() {
	l.Messages = []string{}
}

// HasMessage checks if any captured message contains the given substring.
func (l *MockLogger) HasMessage(substring string) bool {
	for _, msg := range l.Messages {
		if strings.Contains(msg, substring) {
			return true
		}
	}
	return false
}

// SlogLogger creates a real slog logger for testing (alternative to mock).
func SlogLogger(level slog.Level) log.Logger {
	buf := &bytes.Buffer{}
	return log.NewSlogLogger(level, buf)
}
