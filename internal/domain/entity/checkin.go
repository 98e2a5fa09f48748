// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn is a server-persisted record asserting a user is currently present
// at a venue. At most one active check-in exists per user; the database
// enforces this with a partial unique index and the monitor enforces it
// client-side before ever issuing the create call.
type CheckIn struct {
	ID        uuid.UUID  `json:"id"`         // Server-assigned identifier.
	UserID    uuid.UUID  `json:"user_id"`    // The user who checked in.
	VenueID   string     `json:"venue_id"`   // External venue identifier.
	VenueName string     `json:"venue_name"` // Denormalized for feed rendering without a catalog lookup.
	Location  Coordinate `json:"location"`   // Venue location at check-in time.
	StartedAt time.Time  `json:"started_at"` // When the check-in was created.
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	IsActive  bool       `json:"is_active"`
}
