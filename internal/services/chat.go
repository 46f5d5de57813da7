package services

import (
	"context"
	"strings"
	"time"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/models"
)

// maxChatMessages caps the chat snapshot at the newest messages; the
// single oldest drops out first when the cap is exceeded.
const maxChatMessages = 100

// guestName is the fallback display name for blank senders.
const guestName = "Guest"

// maxDisplayNameLen bounds the free-text display name.
const maxDisplayNameLen = 80

// messageTimeFormat renders message timestamps for display.
const messageTimeFormat = "15:04:05"

// MessageWriter defines write operations for chat messages.
type MessageWriter interface {
	Save(ctx context.Context, userID int64, username, content string) (int64, error)
}

// MessageReader defines read operations for chat messages.
type MessageReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.MessageDB, error)
}

// ChatService handles public chat writes and snapshot reads.
// Anonymous senders are a first-class case: no authentication is required.
type ChatService struct {
	writer      MessageWriter
	reader      MessageReader
	kafkaWriter KafkaWriter
}

// NewChatService creates a new ChatService.
func NewChatService(writer MessageWriter, reader MessageReader, kafkaWriter KafkaWriter) *ChatService {
	return &ChatService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// SendMessage appends one chat message and returns its id. userID is 0 for
// anonymous senders. A blank display name falls back to "Guest"; longer
// names are truncated to 80 characters.
func (s *ChatService) SendMessage(ctx context.Context, userID int64, displayName, content string) (int64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, ErrEmptyContent
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = guestName
	}
	if runes := []rune(displayName); len(runes) > maxDisplayNameLen {
		displayName = string(runes[:maxDisplayNameLen])
	}

	if userID < 0 {
		userID = 0
	}

	id, err := s.writer.Save(ctx, userID, displayName, content)
	if err != nil {
		logger.Log.Errorw("failed to save message", "err", err)
		return 0, err
	}

	publishActivity(ctx, s.kafkaWriter, models.Activity{
		Kind:       models.ActivityMessageSent,
		ID:         id,
		UserID:     userID,
		Username:   displayName,
		OccurredAt: time.Now().UTC(),
	})

	return id, nil
}

// ListRecent returns the newest capped messages in ascending time order,
// read top to bottom like a transcript.
func (s *ChatService) ListRecent(ctx context.Context) ([]models.MessageView, error) {
	messages, err := s.reader.ListRecent(ctx, maxChatMessages)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "err", err)
		return nil, err
	}

	views := make([]models.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, models.MessageView{
			ID:       m.ID,
			Username: m.Username,
			Content:  m.Content,
			Created:  m.CreatedAt.UTC().Format(messageTimeFormat),
		})
	}
	return views, nil
}
