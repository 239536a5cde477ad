package auth

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

// userIDKey is the context key for the authenticated user ID.
var userIDKey contextKey

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom extracts the authenticated user ID from the context.
// The second return value is false for anonymous requests.
func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
