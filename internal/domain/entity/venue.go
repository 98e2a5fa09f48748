// Package entity contains the core business objects of the project.
package entity

import "time"

// Venue is a bar from the external directory. The ID is the directory's
// stable identifier, not something we mint; the catalog ingest endpoint
// upserts on it.
type Venue struct {
	ID        string     `json:"id"`       // Stable external identifier from the bar directory.
	Name      string     `json:"name"`     // Display name of the bar.
	Location  Coordinate `json:"location"` // Geographic position of the venue.
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
