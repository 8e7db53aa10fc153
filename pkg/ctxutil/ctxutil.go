// Package ctxutil carries per-request identifiers through context.Context.
package ctxutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	infoKey      ctxKey = "request_info"
)

// RequestInfo lets outer middleware observe identifiers that inner layers
// attach to derived contexts, such as the user resolved by authentication.
type RequestInfo struct {
	mu     sync.Mutex
	userID uuid.UUID
}

// WithRequestInfo attaches an empty RequestInfo to ctx and returns both.
func WithRequestInfo(ctx context.Context) (context.Context, *RequestInfo) {
	info := &RequestInfo{}
	return context.WithValue(ctx, infoKey, info), info
}

// UserID returns the user recorded for the request, if any.
func (i *RequestInfo) UserID() (uuid.UUID, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.userID, i.userID != uuid.Nil
}

// WithUserID stores the user ID in the context and records it on the
// request's RequestInfo when one is attached.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if info, ok := ctx.Value(infoKey).(*RequestInfo); ok {
		info.mu.Lock()
		info.userID = id
		info.mu.Unlock()
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
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
