package middleware

import (
	"context"
	"net/http"
)

// The record store partitions every document by user; the API expects the
// caller's identity in this header. Authentication itself happens upstream.
const UserHeader = "X-User-ID"

type userKey struct{}

// UserScope rejects requests without a user identity and makes it available
// to handlers through the request context.
func UserScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		userID := req.Header.Get(UserHeader)
		if userID == "" {
			http.Error(w, "missing "+UserHeader+" header", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(req.Context(), userKey{}, userID)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// UserFromContext returns the user id attached by UserScope, or an empty
// string outside of it.
func UserFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userKey{}).(string)
	return userID
}
