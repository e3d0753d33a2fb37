// Package utils provides small helpers shared across layers: typed context
// keys, JSON response writing, bearer-token parsing, and JWT issuing and
// validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by
// this package cannot collide with string keys set elsewhere.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key under which the authentication middleware
// stores the id of the authenticated user.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from ctx.
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
