package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

type ctxKey string

const (
	sessionKey   ctxKey = "session"
	sessionIDKey ctxKey = "session_id"
	requestIDKey ctxKey = "request_id"
)

// WithSession stores the request-scoped session context. It is constructed
// once per request by the auth middleware and never mutated afterwards.
func WithSession(ctx context.Context, sess domain.SessionContext) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromCtx extracts the session context.
// Returns false if the request is unauthenticated.
func SessionFromCtx(ctx context.Context) (domain.SessionContext, bool) {
	sess, ok := ctx.Value(sessionKey).(domain.SessionContext)
	if !ok || sess.UserID == uuid.Nil {
		return domain.SessionContext{}, false
	}
	return sess, true
}

// UserIDFromCtx extracts just the user ID from the session context.
// Returns uuid.Nil and false if the request is unauthenticated.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	sess, ok := SessionFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return sess.UserID, true
}

// WithSessionID stores the ID of the session row backing the request's
// token. Needed by the operations that mutate the session itself.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the session row ID.
// Returns uuid.Nil and false if the request is unauthenticated.
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
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
