// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/errors"
)

// ErrVenueNotFound is returned when a venue is not found.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepository defines the interface for venue catalog operations. The
// catalog is fed by an external bar directory, so writes are upserts keyed on
// the directory's identifier.
type VenueRepository interface {
	// UpsertVenue creates the venue or refreshes name/location when the
	// directory already supplied it.
	UpsertVenue(ctx context.Context, venue *entity.Venue) error

	// FindVenueByID retrieves a venue by its external identifier.
	FindVenueByID(ctx context.Context, id string) (*entity.Venue, error)

	// FindVenuesWithin retrieves venues inside a bounding box around center.
	// The box is a cheap prefilter; callers rank by exact haversine distance.
	FindVenuesWithin(ctx context.Context, center entity.Coordinate, radiusMeters float64) ([]*entity.Venue, error)
}
