package usecase

import (
	"context"

	"aroundtheblock/internal/domain/entity"
)

// UpsertVenueInput carries one bar from the external directory feed.
type UpsertVenueInput struct {
	ID       string
	Name     string
	Location entity.Coordinate
}

// VenueUsecase defines the interface for venue catalog use cases
type VenueUsecase interface {
	// UpsertVenue ingests or refreshes one venue from the directory.
	UpsertVenue(ctx context.Context, input *UpsertVenueInput) (*entity.Venue, error)

	// GetVenue retrieves a venue by its external identifier.
	GetVenue(ctx context.Context, venueID string) (*entity.Venue, error)

	// FindNearbyVenues retrieves venues within radiusMeters of center,
	// sorted closest first.
	FindNearbyVenues(ctx context.Context, center entity.Coordinate, radiusMeters float64) ([]*entity.Venue, error)

	// GenerateVenueQR renders the venue's check-in QR code as PNG bytes.
	GenerateVenueQR(ctx context.Context, venueID string) ([]byte, error)
}
