// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for check-in persistence.
var (
	// ErrCheckInNotFound is returned when a check-in is not found or already ended.
	ErrCheckInNotFound = errors.New("check-in not found")
	// ErrActiveCheckInExists is returned when creating a check-in for a user who already has an active one.
	ErrActiveCheckInExists = errors.New("user already has an active check-in")
)

// CheckInRepository defines the interface for check-in database operations.
type CheckInRepository interface {
	// CreateCheckIn persists a new active check-in. Returns
	// ErrActiveCheckInExists if the user already has one; the partial unique
	// index backs this up against concurrent creates.
	CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) error

	// FindCheckInByID retrieves a check-in by its unique ID.
	FindCheckInByID(ctx context.Context, id uuid.UUID) (*entity.CheckIn, error)

	// FindActiveCheckInByUser retrieves the user's current active check-in.
	// Returns ErrCheckInNotFound when the user is not checked in anywhere.
	FindActiveCheckInByUser(ctx context.Context, userID uuid.UUID) (*entity.CheckIn, error)

	// FindCheckInsByUser retrieves a user's check-in history, newest first.
	FindCheckInsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CheckIn, error)

	// FindActiveCheckIns retrieves all currently active check-ins.
	FindActiveCheckIns(ctx context.Context) ([]*entity.CheckIn, error)

	// FindActiveCheckInsByVenue retrieves active check-ins at one venue.
	FindActiveCheckInsByVenue(ctx context.Context, venueID string) ([]*entity.CheckIn, error)

	// EndCheckIn marks a check-in inactive. Returns ErrCheckInNotFound when
	// the check-in does not exist or was already ended.
	EndCheckIn(ctx context.Context, id uuid.UUID, endedAt time.Time) error
}
