package context

import (
	"context"

	"github.com/hendrawans/marketplace/constant"
)

// WithUserID attaches the session user id to the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

// GetUserID returns the session user id attached by the session middleware,
// if any.
func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
