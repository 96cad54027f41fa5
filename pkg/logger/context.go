package logger

import (
	"context"

	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// WithRequestID stores the request id on ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id carried by ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns base tagged with the request id carried by ctx.
func FromContext(ctx context.Context, base zerolog.Logger) zerolog.Logger {
	id := RequestID(ctx)
	if id == "" {
		return base
	}
	return base.With().Str("request_id", id).Logger()
}
