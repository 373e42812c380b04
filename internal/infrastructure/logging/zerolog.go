package logging

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

type zerologLogger struct {
	base   zerolog.Logger
	layer  string
	fields []interface{}
}

func newZerolog(opts Options) (*zerologLogger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	ctx := zerolog.New(opts.Writer).Level(level).With()
	if opts.TimeFormat != "" {
		ctx = ctx.Timestamp()
	}

	return &zerologLogger{
		base:   ctx.Logger(),
		layer:  opts.Layer,
		fields: mapToFields(opts.Fields),
	}, nil
}

func (l *zerologLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.write(l.base.Debug(), ctx, msg, fields)
}

func (l *zerologLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.write(l.base.Info(), ctx, msg, fields)
}

func (l *zerologLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.write(l.base.Warn(), ctx, msg, fields)
}

func (l *zerologLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.write(l.base.Error(), ctx, msg, fields)
}

func (l *zerologLogger) With(fields ...interface{}) ports.Logger {
	return &zerologLogger{base: l.base, layer: l.layer, fields: extend(l.fields, fields)}
}

// write is a no-op when event is nil, which zerolog returns for disabled levels.
func (l *zerologLogger) write(event *zerolog.Event, ctx context.Context, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	kv := entryFields(ctx, l.layer, l.fields, fields)
	for i := 0; i+1 < len(kv); i += 2 {
		key := kv[i].(string)
		switch v := kv[i+1].(type) {
		case error:
			event = event.AnErr(key, v)
		case time.Duration:
			event = event.Dur(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	event.Msg(msg)
}

var _ ports.Logger = (*zerologLogger)(nil)
