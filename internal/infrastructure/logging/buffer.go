package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

const defaultBufferLimit = 1000

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

type entry struct {
	ctx    context.Context
	level  level
	msg    string
	fields []interface{}
}

// Buffer holds log entries emitted before the real logger is configured.
// Once full, the oldest entries are dropped.
type Buffer struct {
	mu      sync.Mutex
	limit   int
	entries []entry
}

// NewBuffer creates a buffer keeping at most limit entries (1000 when <= 0).
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{limit: limit, entries: make([]entry, 0, limit)}
}

// Logger returns a ports.Logger writing into the buffer.
func (b *Buffer) Logger() ports.Logger {
	return &bufferedLogger{buffer: b}
}

// Len reports the number of pending entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func (b *Buffer) add(e entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.limit {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = e
		return
	}
	b.entries = append(b.entries, e)
}

// Flush replays pending entries into delegate in order and empties the buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	pending := make([]entry, len(b.entries))
	copy(pending, b.entries)
	b.entries = b.entries[:0]
	b.mu.Unlock()

	for _, e := range pending {
		switch e.level {
		case levelDebug:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case levelWarn:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case levelError:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

type bufferedLogger struct {
	buffer *Buffer
	fields []interface{}
}

func (l *bufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, levelDebug, msg, fields)
}

func (l *bufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, levelInfo, msg, fields)
}

func (l *bufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, levelWarn, msg, fields)
}

func (l *bufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, levelError, msg, fields)
}

func (l *bufferedLogger) With(fields ...interface{}) ports.Logger {
	return &bufferedLogger{buffer: l.buffer, fields: extend(l.fields, fields)}
}

func (l *bufferedLogger) record(ctx context.Context, lvl level, msg string, fields []interface{}) {
	l.buffer.add(entry{ctx: ctx, level: lvl, msg: msg, fields: extend(l.fields, fields)})
}
