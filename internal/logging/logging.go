// Package logging provides the structured logfmt logger shared by the
// daemon and the UI. Output is line-oriented key=value pairs so daemon
// logs stay greppable without a collector.
package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

type Field struct {
	Key   string
	Value any
}

// F is shorthand for building a Field at a call site.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type logfmtLogger struct {
	out   io.Writer
	level Level
	bound []Field
	mu    *sync.Mutex
}

func New(out io.Writer, level Level) Logger {
	if out == nil {
		out = os.Stderr
	}
	return &logfmtLogger{out: out, level: level, mu: &sync.Mutex{}}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &logfmtLogger{out: io.Discard, level: Error, mu: &sync.Mutex{}}
}

func (l *logfmtLogger) With(fields ...Field) Logger {
	if l == nil {
		return Nop()
	}
	return &logfmtLogger{
		out:   l.out,
		level: l.level,
		bound: append(append([]Field{}, l.bound...), fields...),
		mu:    l.mu,
	}
}

func (l *logfmtLogger) Debug(msg string, fields ...Field) { l.emit(Debug, msg, fields) }
func (l *logfmtLogger) Info(msg string, fields ...Field)  { l.emit(Info, msg, fields) }
func (l *logfmtLogger) Warn(msg string, fields ...Field)  { l.emit(Warn, msg, fields) }
func (l *logfmtLogger) Error(msg string, fields ...Field) { l.emit(Error, msg, fields) }

func (l *logfmtLogger) emit(level Level, msg string, fields []Field) {
	if l == nil || level < l.level {
		return
	}
	all := make([]Field, 0, len(l.bound)+len(fields)+3)
	all = append(all,
		Field{Key: "ts", Value: time.Now().UTC().Format(time.RFC3339Nano)},
		Field{Key: "level", Value: levelString(level)},
		Field{Key: "msg", Value: msg},
	)
	all = append(all, l.bound...)
	all = append(all, fields...)

	var b strings.Builder
	for i, field := range all {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(field.Key)
		b.WriteByte('=')
		b.WriteString(formatValue(field.Value))
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, b.String())
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quoteIfNeeded(v)
	case bool:
		return strconv.FormatBool(v)
	case error:
		return quoteIfNeeded(v.Error())
	case time.Duration:
		return quoteIfNeeded(v.String())
	case fmt.Stringer:
		return quoteIfNeeded(v.String())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", v)
	default:
		return quoteIfNeeded(fmt.Sprintf("%v", v))
	}
}

func quoteIfNeeded(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsAny(value, " \t\n\r\"=") {
		return strconv.Quote(value)
	}
	return value
}

func levelString(level Level) string {
	switch level {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a config string to a Level, defaulting to Info.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// NewRequestID returns a short random id for correlating request logs.
func NewRequestID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return hex.EncodeToString(buf[:])
}
