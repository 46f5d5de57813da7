package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/middlewares"
	"github.com/tanvirhasan/jogajog/internal/models"
	"github.com/tanvirhasan/jogajog/internal/services"
)

// ProfileReader defines the interface that the profile service must implement.
type ProfileReader interface {
	Profile(ctx context.Context, userID int64) (*models.UserDB, error)
}

// MeResponse represents the current user's profile
// swagger:model MeResponse
type MeResponse struct {
	// Username
	// default: alice
	Username string `json:"username"`

	// Full name, empty when not set
	FullName string `json:"full_name"`

	// Bio, empty when not set
	Bio string `json:"bio"`
}

// NewMeHandler returns an HTTP handler serving the session user's profile.
// @Summary Get current user profile
// @Description Returns the profile of the authenticated session user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /me [get]
func NewMeHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		if userID <= 0 {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Login required"})
			return
		}

		user, err := svc.Profile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(MeResponse{
			Username: user.Username,
			FullName: user.FullName,
			Bio:      user.Bio,
		})
	}
}
