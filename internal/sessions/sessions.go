package sessions

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Store issues and resolves opaque session tokens backed by Redis.
// Tokens carry no information themselves; the mapping to a user id
// lives server-side with an idle expiration.
type Store struct {
	rdb *redis.Client
	ttl time.Duration // Idle lifetime, re-armed on every resolve
}

// New creates a session store with the given idle lifetime.
func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Start creates a session bound to userID and returns its opaque token.
func (s *Store) Start(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	value := strconv.FormatInt(userID, 10)

	if err := s.rdb.Set(ctx, keyPrefix+token, value, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user id bound to token, or 0 when the token is
// missing, invalid, or expired. "No session" is a normal state, not an
// error. A successful hit re-arms the idle lifetime.
func (s *Store) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, nil
	}

	value, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || userID <= 0 {
		// Corrupt entry, treat as no session
		return 0, nil
	}

	s.rdb.Expire(ctx, keyPrefix+token, s.ttl)
	return userID, nil
}

// End invalidates token. Ending an unknown or already-ended session is a no-op.
func (s *Store) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
