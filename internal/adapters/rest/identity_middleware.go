package rest

import (
	"net/http"

	"estate-service/internal/contextkeys"
)

// IdentityMiddleware requires the X-User-ID header the gateway injects
// after authenticating the caller, and makes the identity available to
// use cases through the context.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			WriteJSONError(w, http.StatusUnauthorized, "X-User-ID header required")
			return
		}

		ctx := contextkeys.ContextWithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
