package middleware

import (
	"context"
	"net/http"
	"strings"
)

// UserHeader is the header carrying the caller's identity. There is no
// password or token scheme: the frontend stores a chosen name locally and
// sends it on every mutating request.
const UserHeader = "X-User-Name"

type contextKey string

const userNameKey contextKey = "userName"

// RequireUser rejects requests that carry no user identity with 401 and
// stores the user name on the request context for downstream handlers.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.Header.Get(UserHeader))
		if name == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"X-User-Name header is required"}}` + "\n"))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userNameKey, name)))
	})
}

// UserName returns the authenticated user name stored by RequireUser, or ""
// when the request did not pass through it.
func UserName(ctx context.Context) string {
	name, _ := ctx.Value(userNameKey).(string)
	return name
}
