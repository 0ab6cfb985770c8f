// Package reqctx carries per-request metadata through context.Context so
// that services and log calls can correlate work with the originating
// HTTP request.
package reqctx

import (
	"context"
	"time"
)

type ctxKey int

const metaKey ctxKey = iota

// RequestMeta describes the request a piece of work belongs to.
type RequestMeta struct {
	RequestID   string
	ClientIP    string
	UserAgent   string
	RequestedAt time.Time
}

// WithRequestMeta attaches request metadata to the context.
func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey, meta)
}

// RequestMetaFromContext retrieves request metadata from context.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(metaKey).(*RequestMeta)
	return meta, ok && meta != nil
}

// RequestIDFromContext is a shortcut for pulling just the request ID.
// Returns "" when no metadata is attached.
func RequestIDFromContext(ctx context.Context) string {
	if meta, ok := RequestMetaFromContext(ctx); ok {
		return meta.RequestID
	}
	return ""
}
