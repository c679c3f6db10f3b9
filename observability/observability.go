// Package observability provides the logging contract used across the
// conversion pipeline. Library code takes a Logger and never writes to
// stderr directly; the CLI decides whether that logger is a NopLogger or a
// TextLogger at debug level.
package observability

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field    { return stringField{key, value} }
func Int(key string, value int) Field   { return intField{key, value} }
func Error(key string, err error) Field { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// Level controls the minimum severity a TextLogger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string { return []string{"DEBUG", "INFO", "WARN", "ERROR"}[l] }

// TextLogger writes level-prefixed key=value lines to a writer. Safe for
// concurrent use, though the pipeline itself is single-threaded.
type TextLogger struct {
	mu     *sync.Mutex
	w      io.Writer
	level  Level
	fields []Field
}

// NewTextLogger returns a logger emitting records at or above level to w.
func NewTextLogger(w io.Writer, level Level) *TextLogger {
	return &TextLogger{mu: &sync.Mutex{}, w: w, level: level}
}

func (l *TextLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *TextLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *TextLogger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *TextLogger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l *TextLogger) With(fields ...Field) Logger {
	child := &TextLogger{mu: l.mu, w: l.w, level: l.level}
	child.fields = append(append([]Field(nil), l.fields...), fields...)
	return child
}

func (l *TextLogger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}
	var b strings.Builder
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, f := range l.fields {
		fmt.Fprintf(&b, " %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key(), f.Value())
	}
	b.WriteByte('\n')
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, b.String())
}
