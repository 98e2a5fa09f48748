// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WaitTime is a crowd-sourced wait report for a venue. Submissions are gated
// by physical proximity twice: client-side before the request is issued and
// server-side when it lands.
type WaitTime struct {
	ID         uuid.UUID  `json:"id"`
	VenueID    string     `json:"venue_id"`
	VenueName  string     `json:"venue_name"`
	Minutes    int        `json:"minutes"`     // Reported wait in minutes.
	Location   Coordinate `json:"location"`    // Where the reporter stood when submitting.
	ReportedBy uuid.UUID  `json:"reported_by"` // The user who submitted the report.
	ReportedAt time.Time  `json:"reported_at"`
}
