package model

import (
	"time"
)

// VenueModel is the GORM-specific struct for the 'venues' table. The primary
// key is the external directory's venue identifier, so catalog ingest can
// upsert without a lookup.
type VenueModel struct {
	ID        string  `gorm:"type:varchar(128);primary_key"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Latitude  float64 `gorm:"not null;index:idx_venues_lat"`
	Longitude float64 `gorm:"not null;index:idx_venues_lng"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VenueModel) TableName() string {
	return "venues"
}
