package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes KEY=value lines suitable for journald.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer
}

// New creates a logger writing to stdout
func New() *Logger {
	return &Logger{
		writer: os.Stdout,
	}
}

// NewWithWriter creates a logger with a custom writer
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		writer: w,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriter(io.Discard)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...Field) {
	l.log("INFO", msg, fields...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...Field) {
	l.log("ERROR", msg, fields...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log("WARNING", msg, fields...)
}

// Debug logs debug messages
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log("DEBUG", msg, fields...)
}

func (l *Logger) log(level, msg string, fields ...Field) {
	output := fmt.Sprintf("LEVEL=%s MESSAGE=%s", level, msg)
	for _, field := range fields {
		output += fmt.Sprintf(" %s=%v", field.Key, field.Value)
	}
	// handlers log from many goroutines
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.writer, output)
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new field (shorthand)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Common field constructors
func Action(value string) Field          { return F("ACTION", value) }
func Status(value string) Field          { return F("STATUS", value) }
func Error(value error) Field            { return F("ERROR", value) }
func Reason(value string) Field          { return F("REASON", value) }
func RequestID(value string) Field       { return F("REQUEST_ID", value) }
func Method(value string) Field          { return F("METHOD", value) }
func Path(value string) Field            { return F("PATH", value) }
func StatusCode(value int) Field         { return F("STATUS_CODE", value) }
func Duration(value time.Duration) Field { return F("DURATION", value) }
func EventID(value string) Field         { return F("EVENT_ID", value) }
func Calendar(value string) Field        { return F("CALENDAR", value) }
func Busy(value int) Field               { return F("BUSY", value) }
func Window(start, end time.Time) Field {
	return F("TIME_WINDOW", start.UTC().Format(time.RFC3339)+"/"+end.UTC().Format(time.RFC3339))
}
