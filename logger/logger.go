// Package logger provides the small logging interface shared by the fact
// collectors and the renderer. Output goes to stderr so the rendered frame on
// stdout stays intact.
package logger

import (
	"fmt"
	"log"
	"sync"
)

// Logger defines the logging operations. All methods take a printf-style
// format string and arguments. Degraded facts are reported at debug level;
// Warn is for conditions that change what the dashboard looks like.
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

// envLogger logs through the standard log package. Debug messages are only
// printed when debug is enabled.
type envLogger struct {
	prefix string
	debug  bool
}

// New creates a logger with debug output switched on or off (TDASH_DEBUG).
// The prefix is prepended to every message (e.g. "[tdash]").
func New(prefix string, debug bool) Logger {
	return &envLogger{prefix: prefix, debug: debug}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}

// LogMessage is a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures messages for test assertions. It is safe for use by
// the concurrent network collectors.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{Messages: make([]LogMessage, 0)}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.add("debug", format, args...)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.add("warn", format, args...)
}

func (l *BufferLogger) add(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

// HasLevel reports whether any message was logged at level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}
