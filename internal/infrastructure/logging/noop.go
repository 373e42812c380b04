package logging

import (
	"context"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

type noOpLogger struct{}

func (noOpLogger) Debug(context.Context, string, ...interface{}) {}
func (noOpLogger) Info(context.Context, string, ...interface{})  {}
func (noOpLogger) Warn(context.Context, string, ...interface{})  {}
func (noOpLogger) Error(context.Context, string, ...interface{}) {}

func (n noOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns a logger that discards everything.
func NewNoOpLogger() ports.Logger {
	return noOpLogger{}
}
