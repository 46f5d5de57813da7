package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/models"
)

// ChatLister defines the interface that the chat service must implement.
type ChatLister interface {
	ListRecent(ctx context.Context) ([]models.MessageView, error)
}

// MessagesResponse represents the chat snapshot served to polling clients
// swagger:model MessagesResponse
type MessagesResponse struct {
	// The newest messages (up to 100), oldest first
	Messages []models.MessageView `json:"messages"`
}

// NewGetMessagesHandler returns an HTTP handler serving the chat snapshot.
// Ordering is ascending, the inverse of the feed: chat reads like a
// transcript.
// @Summary Get recent chat messages
// @Description Returns the newest 100 messages in ascending time order
// @Tags chat
// @Produce json
// @Success 200 {object} handlers.MessagesResponse "Chat snapshot"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /get_messages [get]
func NewGetMessagesHandler(svc ChatLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := svc.ListRecent(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if messages == nil {
			messages = []models.MessageView{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(MessagesResponse{Messages: messages})
	}
}
