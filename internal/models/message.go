package models

import "time"

// MessageDB represents a public chat message row. UserID is 0 for
// anonymous senders and is a non-enforcing back-link, not a foreign key.
type MessageDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key, monotonically assigned
	UserID    int64     `json:"user_id" db:"user_id"`       // Sender user id, 0 when anonymous
	Username  string    `json:"username" db:"username"`     // Display name, free text
	Content   string    `json:"content" db:"content"`       // Message body, non-empty
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Server-assigned, UTC
}

// MessageView is the wire shape served to polling clients, oldest first.
type MessageView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
	Created  string `json:"created"` // Rendered as "15:04:05"
}
