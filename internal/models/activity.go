package models

import "time"

// Activity kinds published to the activity topic.
const (
	ActivityPostCreated = "post_created"
	ActivityMessageSent = "message_sent"
)

// Activity is the event payload published after a successful feed or chat write.
type Activity struct {
	Kind       string    `json:"kind"`        // ActivityPostCreated or ActivityMessageSent
	ID         int64     `json:"id"`          // Id of the created row
	UserID     int64     `json:"user_id"`     // 0 for anonymous chat senders
	Username   string    `json:"username"`    // Display name at write time
	OccurredAt time.Time `json:"occurred_at"` // Server time of the write
}
