package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/middlewares"
	"github.com/tanvirhasan/jogajog/internal/services"
)

// PostCreator defines the interface that the feed service must implement.
type PostCreator interface {
	CreatePost(ctx context.Context, userID int64, content string) (int64, error)
}

// CreatePostRequest represents the JSON body for creating a post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Post content, non-empty after trimming
	// required: true
	// default: hello world
	Content string `json:"content"`
}

// OKResponse represents a successful write acknowledgement
// swagger:model OKResponse
type OKResponse struct {
	// Always true on success
	OK bool `json:"ok"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Empty content
	Error string `json:"error"`
}

// NewCreatePostHandler returns an HTTP handler for creating a feed post.
// The caller must have an authenticated session.
// @Summary Create a post
// @Description Appends one immutable post owned by the session user
// @Tags feed
// @Accept json
// @Produce json
// @Param createPostRequest body handlers.CreatePostRequest true "Post content"
// @Success 200 {object} handlers.OKResponse "Post created"
// @Failure 400 {object} handlers.ErrorResponse "Empty content / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Router /post [post]
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePostRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Empty content"})
			return
		}

		userID := middlewares.UserIDFromContext(r.Context())

		_, err := svc.CreatePost(r.Context(), userID, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnauthenticated):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Login required"})
			case errors.Is(err, services.ErrEmptyContent):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Empty content"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(OKResponse{OK: true})
	}
}
