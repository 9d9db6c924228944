package logging

import "context"

var _ Logger = (*NullLogger)(nil)

// NullLogger drops every entry. The engine falls back to it when no logger
// is configured, so call sites never check for nil.
type NullLogger struct{}

// NewNullLogger creates a new null logger
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Debug(ctx context.Context, msg string, fields Fields) {}
func (l *NullLogger) Info(ctx context.Context, msg string, fields Fields) {}
func (l *NullLogger) Warn(ctx context.Context, msg string, fields Fields) {}
func (l *NullLogger) Error(ctx context.Context, msg string, err error, fields Fields) {}

// WithFields returns l; there is nothing to attach fields to
func (l *NullLogger) WithFields(fields Fields) Logger {
	return l
}

func (l *NullLogger) Close() error {
	return nil
}
