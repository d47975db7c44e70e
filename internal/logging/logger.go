// Package logging provides the event-logger capability consumed by shapes.
// Shapes report computed values and lifecycle events through a Logger; the
// logger has no knowledge of the shapes it logs for. Sink failures are a
// local concern of the sink and never propagate into geometric computations.
package logging

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// DefaultLogFile is the file the file sink appends to when no path is given.
const DefaultLogFile = "geometry.log"

// timestampLayout gives second resolution, per the log file contract.
const timestampLayout = "2006-01-02 15:04:05"

// Logger records informational events emitted by shapes.
// Implementations must not fail the caller: LogInfo has no error return.
type Logger interface {
	LogInfo(message string)
}

// formatLine renders the one-line log format: "[LOG] <timestamp> : <message>".
func formatLine(now time.Time, message string) string {
	return fmt.Sprintf("[LOG] %s : %s", now.Format(timestampLayout), message)
}

// ConsoleLogger writes timestamped lines to standard output.
type ConsoleLogger struct{}

// NewConsoleLogger returns a console sink. This is the default sink injected
// into shapes constructed without an explicit logger.
func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{}
}

// LogInfo writes one timestamped line to stdout.
func (c *ConsoleLogger) LogInfo(message string) {
	fmt.Fprintln(os.Stdout, formatLine(time.Now(), message))
}

// FileLogger appends timestamped lines to a log file.
// The file is opened at construction and released by Close; there is no
// finalizer. A mutex serializes writers so concurrent callers cannot
// interleave partial lines.
type FileLogger struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// NewFileLogger opens (creating if needed) the log file for appending.
func NewFileLogger(path string) (*FileLogger, error) {
	if path == "" {
		path = DefaultLogFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &FileLogger{path: path, file: f}, nil
}

// LogInfo appends one timestamped line and flushes it. Write failures are
// reported on stderr and otherwise swallowed; the triggering computation
// must proceed.
func (l *FileLogger) LogInfo(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		fmt.Fprintf(os.Stderr, "[logging] dropped event for closed log %s: %s\n", l.path, message)
		return
	}
	if _, err := fmt.Fprintln(l.file, formatLine(time.Now(), message)); err != nil {
		fmt.Fprintf(os.Stderr, "[logging] write to %s failed: %v\n", l.path, err)
		return
	}
	if err := l.file.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "[logging] sync of %s failed: %v\n", l.path, err)
	}
}

// Path returns the file the logger appends to.
func (l *FileLogger) Path() string {
	return l.path
}

// Close releases the underlying file. Further LogInfo calls become stderr
// diagnostics. Close is idempotent.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// NopLogger discards all events. Useful in tests that assert on values
// rather than log output.
type NopLogger struct{}

// NewNopLogger returns a sink that discards everything.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// LogInfo discards the message.
func (*NopLogger) LogInfo(string) {}
