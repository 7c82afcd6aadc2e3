// Package logging writes diagnostic lines for the folder lister to the console.
package logging

import (
	"io"
	"log"
	"os"
)

// Log levels
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger accepts one diagnostic line at a time.
type Logger interface {
	Log(level, message string, err error)
}

// StdLogger implements Logger on top of the standard log package.
type StdLogger struct {
	logger *log.Logger
}

// NewStdLogger creates a StdLogger writing to w, or to stderr when w is nil.
func NewStdLogger(w io.Writer) *StdLogger {
	if w == nil {
		w = os.Stderr
	}
	return &StdLogger{logger: log.New(w, "", log.LstdFlags)}
}

// Log writes "LEVEL message" with the error appended when present.
func (l *StdLogger) Log(level, message string, err error) {
	if err != nil {
		l.logger.Printf("%s %s: %v", level, message, err)
		return
	}
	l.logger.Printf("%s %s", level, message)
}

// Discard drops every line.
type Discard struct{}

// Log implements Logger.
func (Discard) Log(string, string, error) {}
