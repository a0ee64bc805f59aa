// Package logger provides the logging interface used by sizeprio.
// NZBGet reads a script's stdout line by line and files each line under the
// level named by its leading tag ([DETAIL], [INFO], [WARNING], [ERROR]), so
// the console logger writes exactly those tags.
package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger defines the leveled logging interface shared by all sizeprio components.
type Logger interface {
	// Detail logs a verbose message (e.g., "Size of X is 5000.00 MB").
	Detail(format string, args ...interface{})

	// Info logs an informational message.
	Info(format string, args ...interface{})

	// Warning logs a warning message.
	Warning(format string, args ...interface{})

	// Error logs an error message (e.g., "list groups: connection refused").
	Error(format string, args ...interface{})

	// Close releases resources held by the logger.
	// Safe to call multiple times. Returns nil for loggers without resources.
	Close() error
}

// StandardLogger wraps the stdlib *log.Logger and tags each line with its level.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger creates a logger that wraps the given *log.Logger.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

// NewConsoleLogger returns a StandardLogger writing untimestamped lines to
// stdout, which is where NZBGet collects script output.
func NewConsoleLogger() *StandardLogger {
	return NewStandardLogger(log.New(os.Stdout, "", 0))
}

// Detail logs a message with [DETAIL] prefix.
func (s *StandardLogger) Detail(format string, args ...interface{}) {
	s.logger.Printf("[DETAIL] "+format, args...)
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close is a no-op for StandardLogger (no resources to release).
func (s *StandardLogger) Close() error {
	return nil
}

// Ensure implementations satisfy the Logger interface.
var _ Logger = (*StandardLogger)(nil)

// MockLogger implements Logger for testing purposes.
// It records all log calls for verification in tests.
type MockLogger struct {
	DetailCalls  []string
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates a new MockLogger for testing.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		DetailCalls:  make([]string, 0),
		InfoCalls:    make([]string, 0),
		WarningCalls: make([]string, 0),
		ErrorCalls:   make([]string, 0),
	}
}

// Detail records the formatted message.
func (m *MockLogger) Detail(format string, args ...interface{}) {
	m.DetailCalls = append(m.DetailCalls, fmt.Sprintf(format, args...))
}

// Info records the formatted message.
func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

// Warning records the formatted message.
func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

// Error records the formatted message.
func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

// Close records that Close was called.
func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

var _ Logger = (*MockLogger)(nil)
