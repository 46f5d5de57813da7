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

// MessageSender defines the interface that the chat service must implement.
type MessageSender interface {
	SendMessage(ctx context.Context, userID int64, displayName, content string) (int64, error)
}

// SendMessageRequest represents the JSON body for sending a chat message.
// A missing or blank user falls back to the literal "Guest".
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// Display name, free text, defaults to "Guest"
	// default: Bob
	User string `json:"user"`

	// Message content, non-empty after trimming
	// required: true
	// default: hi
	Content string `json:"content"`
}

// NewSendMessageHandler returns an HTTP handler for sending a public chat
// message. Anonymous senders are accepted; a session, when present, is
// recorded as the owning user.
// @Summary Send a chat message
// @Description Appends one immutable chat message; no authentication required
// @Tags chat
// @Accept json
// @Produce json
// @Param sendMessageRequest body handlers.SendMessageRequest true "Message to send"
// @Success 200 {object} handlers.OKResponse "Message stored"
// @Failure 400 {object} handlers.ErrorResponse "Empty content / invalid request"
// @Router /send_message [post]
func NewSendMessageHandler(svc MessageSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendMessageRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Empty content"})
			return
		}

		userID := middlewares.UserIDFromContext(r.Context())

		_, err := svc.SendMessage(r.Context(), userID, req.User, req.Content)
		if err != nil {
			switch {
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
