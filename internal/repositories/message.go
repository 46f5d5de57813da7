package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/models"
)

type MessageWriteRepository struct {
	db *sqlx.DB
}

func NewMessageWriteRepository(db *sqlx.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Save appends one immutable message row and returns its assigned id.
// userID is 0 for anonymous senders.
func (r *MessageWriteRepository) Save(ctx context.Context, userID int64, username, content string) (int64, error) {
	const query = `
		INSERT INTO messages (user_id, username, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`
	args := []any{userID, username, content}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// ListRecent returns the newest limit messages reordered ascending, so the
// client reads them top to bottom like a transcript. Ties broken by id.
func (r *MessageReadRepository) ListRecent(ctx context.Context, limit int) ([]models.MessageDB, error) {
	const query = `
		SELECT id, user_id, username, content, created_at
		FROM (
			SELECT id, user_id, username, content, created_at
			FROM messages
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		) latest
		ORDER BY created_at ASC, id ASC
	`

	var messages []models.MessageDB
	err := r.db.SelectContext(ctx, &messages, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(messages),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return messages, nil
}
