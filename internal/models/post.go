package models

import "time"

// PostDB represents a feed post row. Username is filled on reads by
// joining the owning user; it is not stored on the posts table.
type PostDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key, monotonically assigned
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning user
	Username  string    `json:"username" db:"username"`     // Author username (read-time join)
	Content   string    `json:"content" db:"content"`       // Post body, non-empty
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Server-assigned, UTC
}

// PostView is the wire shape served to polling clients, newest first.
type PostView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
	Created  string `json:"created"` // Rendered as "Jan 02, 15:04"
}
