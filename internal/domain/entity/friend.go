package entity

import (
	"time"

	"github.com/google/uuid"
)

// Friendship links two users for feed and notification fan-out. The social
// graph itself (requests, blocking) lives in the main app backend; the
// notifier only reads confirmed edges.
type Friendship struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FriendID  uuid.UUID `json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}
