package middlewares

import (
	"context"
	"net/http"

	"github.com/tanvirhasan/jogajog/internal/logger"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "jogajog_session"

// SessionResolver resolves an opaque token to a user id, 0 meaning no session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (int64, error)
}

// SessionMiddleware resolves the session cookie fresh on every request and,
// when it maps to a user, stores the user id in the request context. A
// missing or expired session is a normal state: the request proceeds as
// anonymous, and handlers that require identity reject it themselves.
func SessionMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := resolver.Resolve(ctx, cookie.Value)
			if err != nil {
				// Store failure, not an invalid token
				logger.Log.Errorw("session resolution failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if userID > 0 {
				r = r.WithContext(setUserID(ctx, userID))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userIDKey = contextKey{}

// setUserID stores the authenticated user id in the context
func setUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user id from the context.
// Returns 0 when the request is anonymous.
func UserIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey).(int64)
	return userID
}
