package ports

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"
)

// Logger is the structured logging contract used by the engine, the theme
// loaders and the registry. Calls take key/value pairs and must be safe for
// concurrent use. Implementations add the correlation ID found in context.
// Common fields:
//   - correlation_id (UUIDv4, generated once per CLI command)
//   - layer (engine|config|source|registry|cli)
//   - component, variant, size, color_mode for resolution stages
//   - theme, location for loaders
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type ctxKey int

const correlationIDKey ctxKey = iota

// WithCorrelationID attaches id to ctx. An empty id leaves ctx unchanged.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey, id)
}

// GetCorrelationID returns the correlation ID stored in ctx, or "".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// GenerateCorrelationID returns a random UUIDv4. If the system random source
// fails, a time-based ID is returned instead.
func GenerateCorrelationID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("themekit-%d", time.Now().UnixNano())
	}
	b[6] = b[6]&0x0f | 0x40
	b[8] = b[8]&0x3f | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
