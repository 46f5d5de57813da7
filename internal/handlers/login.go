package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/middlewares"
	"github.com/tanvirhasan/jogajog/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login. On success the
// opaque session token is handed back in a cookie and the client is
// redirected to the home page.
// @Summary User login
// @Description Authenticate a user and establish a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "Session cookie set, redirects to /"
// @Failure 400 {string} string "Invalid credentials"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid credentials", http.StatusBadRequest)
			return
		}

		token, err := svc.Login(r.Context(),
			r.PostFormValue("username"),
			r.PostFormValue("password"),
		)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				http.Error(w, "Invalid credentials", http.StatusBadRequest)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middlewares.SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
