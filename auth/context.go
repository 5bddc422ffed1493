package auth

import (
	"context"

	"wtfTimeline/domain"
)

const (
	userKey privateKey = "user"
)

type privateKey string

// SetUser stores the authenticated user in the request context.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated user from the request context,
// or nil if the request is anonymous.
func GetUser(ctx context.Context) *domain.User {
	if user, ok := ctx.Value(userKey).(*domain.User); ok {
		return user
	}
	return nil
}
