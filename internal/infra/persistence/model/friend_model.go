package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel is the GORM-specific struct for the 'friendships' table.
// The social graph lives in another system; rows here are a mirrored edge
// list the notifier reads to fan out check-in pushes.
type FriendshipModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_friendships_pair"`
	FriendID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_friendships_pair;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}
