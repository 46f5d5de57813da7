package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, fullName string) (int64, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account from form fields. Ensures a unique username; the password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param full_name formData string false "Full name"
// @Success 303 "Redirects to /login"
// @Failure 400 {string} string "Username and password required / Username already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Username and password required", http.StatusBadRequest)
			return
		}

		_, err := svc.Register(r.Context(),
			r.PostFormValue("username"),
			r.PostFormValue("password"),
			r.PostFormValue("full_name"),
		)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				http.Error(w, "Username and password required", http.StatusBadRequest)
			case errors.Is(err, services.ErrUsernameTaken):
				http.Error(w, "Username already exists", http.StatusBadRequest)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
