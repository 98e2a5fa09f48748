package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckInModel is the GORM-specific struct for the 'check_ins' table.
//
// The partial unique index on user_id where is_active enforces the one
// active check-in per user invariant at the database level; application
// code treats a unique violation on create as a conflict.
type CheckInModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_check_ins_active_user,where:is_active"`
	VenueID   string    `gorm:"type:varchar(128);not null;index"`
	VenueName string    `gorm:"type:varchar(255);not null"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	StartedAt time.Time `gorm:"not null"`
	EndedAt   *time.Time
	IsActive  bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckInModel) TableName() string {
	return "check_ins"
}
