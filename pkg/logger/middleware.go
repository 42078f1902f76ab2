package logger

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is the HTTP header carrying the request ID
const RequestIDHeader = "X-Request-ID"

// NewRequestID generates a new request ID
func NewRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a copy of ctx carrying id
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
