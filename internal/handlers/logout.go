package handlers

import (
	"context"
	"net/http"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/middlewares"
)

// SessionEnder defines the interface for invalidating a session token.
type SessionEnder interface {
	End(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// Logging out without a session, or twice, is a no-op: this endpoint never
// fails from the client's point of view.
// @Summary Log out
// @Description Ends the current session and clears the session cookie
// @Tags auth
// @Success 303 "Redirects to /login"
// @Router /logout [get]
func NewLogoutHandler(svc SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(middlewares.SessionCookie); err == nil && cookie.Value != "" {
			if err := svc.End(r.Context(), cookie.Value); err != nil {
				// Still clear the cookie and redirect
				logger.Log.Errorw("failed to end session", "err", err)
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middlewares.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
