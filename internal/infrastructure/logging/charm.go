package logging

import (
	"context"
	"fmt"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

type charmLogger struct {
	logger *cblog.Logger
	layer  string
	fields []interface{}
}

func newCharm(opts Options) (*charmLogger, error) {
	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	base := cblog.NewWithOptions(opts.Writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: opts.TimeFormat != "",
		Prefix:          "themekit",
	})

	return &charmLogger{
		logger: base,
		layer:  opts.Layer,
		fields: mapToFields(opts.Fields),
	}, nil
}

func (l *charmLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.logger.Debug(msg, entryFields(ctx, l.layer, l.fields, fields)...)
}

func (l *charmLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.logger.Info(msg, entryFields(ctx, l.layer, l.fields, fields)...)
}

func (l *charmLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.logger.Warn(msg, entryFields(ctx, l.layer, l.fields, fields)...)
}

func (l *charmLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.logger.Error(msg, entryFields(ctx, l.layer, l.fields, fields)...)
}

func (l *charmLogger) With(fields ...interface{}) ports.Logger {
	return &charmLogger{logger: l.logger, layer: l.layer, fields: extend(l.fields, fields)}
}

var _ ports.Logger = (*charmLogger)(nil)
