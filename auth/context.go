// Context helpers for carrying the authenticated user through a request.
package auth

import "context"

// contextKey is a private type for context keys to avoid collisions with
// other packages.
type contextKey string

const userContextKey contextKey = "auth_user"

// NewContextWithUser returns a child context carrying the authenticated user.
func NewContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// CurrentUser extracts the authenticated user set by RequireUser. The second
// return value is false when the request did not pass through the middleware.
func CurrentUser(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey).(*User)
	return user, ok
}
