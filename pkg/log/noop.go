package log

// NoopLogger implements Logger by discarding all log messages.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

// Debug drops the message and its fields.
func (NoopLogger) Debug(msg string, fields ...Field) {}

// Info drops the message and its fields.
func (NoopLogger) Info(msg string, fields ...Field) {}

// Warn drops the message and its fields.
func (NoopLogger) Warn(msg string, fields ...Field) {}

// Error drops the message and its fields.
func (NoopLogger) Error(msg string, fields ...Field) {}
