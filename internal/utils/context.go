// Package utils provides small helpers shared across the application:
// type-safe context keys, JSON response writing, JWT token generation and
// validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with other packages that store string-keyed values in the
// same context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authentication middleware stores
// the requester's user id. Read it back with GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id from the
// context. ok is false when the value is missing or has an unexpected
// type, which means the request did not pass the authentication
// middleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
