package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/models"
)

// FeedLister defines the interface that the feed service must implement.
type FeedLister interface {
	ListRecent(ctx context.Context) ([]models.PostView, error)
}

// PostsResponse represents the feed snapshot served to polling clients
// swagger:model PostsResponse
type PostsResponse struct {
	// Up to 50 posts, newest first
	Posts []models.PostView `json:"posts"`
}

// NewGetPostsHandler returns an HTTP handler serving the feed snapshot.
// No authentication is required; an empty feed is a normal response.
// @Summary Get recent posts
// @Description Returns up to 50 posts, newest first
// @Tags feed
// @Produce json
// @Success 200 {object} handlers.PostsResponse "Feed snapshot"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /get_posts [get]
func NewGetPostsHandler(svc FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.ListRecent(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if posts == nil {
			posts = []models.PostView{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PostsResponse{Posts: posts})
	}
}
