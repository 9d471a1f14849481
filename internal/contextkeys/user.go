package contextkeys

import (
	"context"
)

type userIDKeyType struct{}

var userIDKey = userIDKeyType{}

// ContextWithUserID puts the opaque acting-user identifier into the
// context. The REST layer fills it from the X-User-ID header the gateway
// injects after authentication.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the acting-user identifier, or "" when the
// request carried no identity.
func UserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}
