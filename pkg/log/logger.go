package log

import "time"

// Logger provides structured logging capabilities.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Time creates a timestamp field.
func Time(key string, value time.Time) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field with key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// scoped prepends a fixed set of fields to every entry.
type scoped struct {
	base   Logger
	fields []Field
}

// With returns a Logger that adds fields to every message logged through it.
// Nested calls accumulate fields; the parent logger is left untouched.
func With(l Logger, fields ...Field) Logger {
	if s, ok := l.(*scoped); ok {
		merged := make([]Field, 0, len(s.fields)+len(fields))
		merged = append(merged, s.fields...)
		merged = append(merged, fields...)
		return &scoped{base: s.base, fields: merged}
	}
	return &scoped{base: l, fields: append([]Field(nil), fields...)}
}

func (s *scoped) merge(fields []Field) []Field {
	if len(fields) == 0 {
		return s.fields
	}
	out := make([]Field, 0, len(s.fields)+len(fields))
	out = append(out, s.fields...)
	return append(out, fields...)
}

func (s *scoped) Debug(msg string, fields ...Field) { s.base.Debug(msg, s.merge(fields)...) }
func (s *scoped) Info(msg string, fields ...Field)  { s.base.Info(msg, s.merge(fields)...) }
func (s *scoped) Warn(msg string, fields ...Field)  { s.base.Warn(msg, s.merge(fields)...) }
func (s *scoped) Error(msg string, fields ...Field) { s.base.Error(msg, s.merge(fields)...) }
