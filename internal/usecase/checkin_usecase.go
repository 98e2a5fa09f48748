package usecase

import (
	"context"

	"aroundtheblock/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCheckInInput carries everything needed to open a check-in. Venue
// details ride along because the catalog may not have seen this bar yet;
// the usecase upserts it on first contact.
type CreateCheckInInput struct {
	UserID    uuid.UUID
	VenueID   string
	VenueName string
	Location  entity.Coordinate
}

// CheckInUsecase defines the interface for check-in management use cases
type CheckInUsecase interface {
	// CreateCheckIn opens a check-in for the user at the venue. Returns
	// ErrCheckInConflict when the user already has an active one.
	CreateCheckIn(ctx context.Context, input *CreateCheckInInput) (*entity.CheckIn, error)

	// EndCheckIn closes the check-in. Returns ErrCheckInNotFound when the
	// check-in does not exist or was already ended.
	EndCheckIn(ctx context.Context, checkInID uuid.UUID) error

	// GetUserCheckIns retrieves a user's check-ins; activeOnly narrows the
	// result to the current one.
	GetUserCheckIns(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.CheckIn, error)

	// GetActiveCheckIns retrieves every currently active check-in.
	GetActiveCheckIns(ctx context.Context) ([]*entity.CheckIn, error)

	// GetVenueCheckIns retrieves who is currently checked in at a venue.
	GetVenueCheckIns(ctx context.Context, venueID string) ([]*entity.CheckIn, error)
}
