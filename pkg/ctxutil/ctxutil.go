package ctxutil

import (
	"context"

	"github.com/zututors/zututors-backend/internal/domain"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// Caller is the authenticated participant attached to a request by the
// session layer: a numeric id plus the identity space it belongs to.
type Caller struct {
	Kind domain.ParticipantKind
	ID   int64
}

// WithCaller stores the caller in the context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromCtx extracts the caller from the context.
// Returns false if the value is missing, zero, or of the wrong type.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey).(Caller)
	if !ok || c.ID == 0 || !c.Kind.IsValid() {
		return Caller{}, false
	}
	return c, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
