package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/models"
)

var (
	// ErrUnauthenticated is returned when a write requires a session that is absent.
	ErrUnauthenticated = errors.New("login required")
	// ErrEmptyContent is returned when content trims to the empty string.
	ErrEmptyContent = errors.New("empty content")
)

// maxFeedPosts caps the feed snapshot. Older posts silently fall out of
// view once write volume exceeds the cap between polls.
const maxFeedPosts = 50

// postTimeFormat renders post timestamps for display.
const postTimeFormat = "Jan 02, 15:04"

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, userID int64, content string) (int64, error)
}

// PostReader defines read operations for posts.
type PostReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.PostDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FeedService handles feed writes and snapshot reads.
type FeedService struct {
	writer      PostWriter
	reader      PostReader
	kafkaWriter KafkaWriter
}

// NewFeedService creates a new FeedService.
func NewFeedService(writer PostWriter, reader PostReader, kafkaWriter KafkaWriter) *FeedService {
	return &FeedService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// CreatePost appends one post owned by userID and returns its id.
// Requires an authenticated user; content must be non-empty after trimming.
func (s *FeedService) CreatePost(ctx context.Context, userID int64, content string) (int64, error) {
	if userID <= 0 {
		return 0, ErrUnauthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return 0, ErrEmptyContent
	}

	id, err := s.writer.Save(ctx, userID, content)
	if err != nil {
		logger.Log.Errorw("failed to save post", "err", err)
		return 0, err
	}

	s.publishActivity(ctx, models.Activity{
		Kind:       models.ActivityPostCreated,
		ID:         id,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	})

	return id, nil
}

// ListRecent returns up to the capped number of posts, newest first, with
// timestamps rendered for display.
func (s *FeedService) ListRecent(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.reader.ListRecent(ctx, maxFeedPosts)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "err", err)
		return nil, err
	}

	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, models.PostView{
			ID:       p.ID,
			Username: p.Username,
			Content:  p.Content,
			Created:  p.CreatedAt.UTC().Format(postTimeFormat),
		})
	}
	return views, nil
}

// publishActivity publishes an activity event to Kafka, best effort.
func (s *FeedService) publishActivity(ctx context.Context, activity models.Activity) {
	publishActivity(ctx, s.kafkaWriter, activity)
}

// publishActivity is shared by the feed and chat services. A nil writer
// disables publishing; failures are logged, never surfaced to the caller.
func publishActivity(ctx context.Context, w KafkaWriter, activity models.Activity) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "kind", activity.Kind, "id", activity.ID)
		return
	}

	b, err := json.Marshal(activity)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(activity.ID, 10)),
		Value: b,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity", "kind", activity.Kind, "id", activity.ID, "err", err)
		return
	}

	logger.Log.Infow("activity published", "kind", activity.Kind, "id", activity.ID)
}
