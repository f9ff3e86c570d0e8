package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the key type for request-scoped context values.
type ContextKey string

const (
	// UserIDContextKey carries the verified identity subject for the request.
	// Absent on unauthenticated requests.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey carries the per-request trace id used to correlate log
	// lines with error responses.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID attaches a fresh trace id to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace id from the context, or "" when none is set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetUserID attaches the verified identity subject to the context.
func SetUserID(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, subject)
}

// GetUserID retrieves the identity subject from the context. The second
// return is false when the request carried no verified identity.
func GetUserID(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(UserIDContextKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
