package model

import (
	"time"

	"github.com/google/uuid"
)

// WaitTimeModel is the GORM-specific struct for the 'wait_times' table. One
// row per crowd-sourced report; reads are bounded by reported_at.
type WaitTimeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VenueID    string    `gorm:"type:varchar(128);not null;index:idx_wait_times_venue_reported"`
	VenueName  string    `gorm:"type:varchar(255);not null"`
	Minutes    int       `gorm:"not null"`
	Latitude   float64   `gorm:"not null"`
	Longitude  float64   `gorm:"not null"`
	ReportedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	ReportedAt time.Time `gorm:"not null;index:idx_wait_times_venue_reported"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (WaitTimeModel) TableName() string {
	return "wait_times"
}
