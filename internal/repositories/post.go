package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/models"
)

type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Save appends one immutable post row and returns its assigned id.
func (r *PostWriteRepository) Save(ctx context.Context, userID int64, content string) (int64, error) {
	const query = `
		INSERT INTO posts (user_id, content, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`
	args := []any{userID, content}

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

type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// ListRecent returns up to limit posts, newest first, ties broken by id.
// The author's username is denormalized into each row at read time.
func (r *PostReadRepository) ListRecent(ctx context.Context, limit int) ([]models.PostDB, error) {
	const query = `
		SELECT p.id, p.user_id, u.username, p.content, p.created_at
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1
	`

	var posts []models.PostDB
	err := r.db.SelectContext(ctx, &posts, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}
