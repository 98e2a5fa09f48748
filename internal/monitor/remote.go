package monitor

import (
	"context"

	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors the remote store maps server responses onto. The machine
// treats ErrConflict on create and ErrNotFound on end as idempotent
// outcomes rather than failures.
var (
	// ErrConflict means the server already holds an active check-in for the
	// user.
	ErrConflict = errors.New("active check-in already exists")

	// ErrNotFound means the referenced check-in does not exist or was
	// already ended.
	ErrNotFound = errors.New("check-in not found")

	// ErrTooFar means the server re-validated proximity and rejected the
	// request.
	ErrTooFar = errors.New("too far from the venue")

	// ErrNoActiveCheckIn is returned by manual check-out when there is
	// nothing to end.
	ErrNoActiveCheckIn = errors.New("no active check-in")

	// ErrAlreadyCheckedIn is returned by manual check-in while an active
	// check-in is held locally.
	ErrAlreadyCheckedIn = errors.New("already checked in")

	// ErrOperationPending is returned by manual operations while a remote
	// call from a previous transition is still in flight.
	ErrOperationPending = errors.New("a check-in operation is already in progress")
)

// RemoteStore is the monitor's view of the server. Implementations map
// transport failures to plain errors and the idempotency-relevant statuses
// to the sentinels above.
type RemoteStore interface {
	// CreateCheckIn opens a check-in for the user at the venue.
	CreateCheckIn(ctx context.Context, userID uuid.UUID, venue entity.Venue) (*entity.CheckIn, error)

	// EndCheckIn closes the check-in with the given id.
	EndCheckIn(ctx context.Context, checkInID uuid.UUID) error

	// GetCurrentCheckIn returns the user's active check-in, or nil when the
	// user is not checked in anywhere.
	GetCurrentCheckIn(ctx context.Context, userID uuid.UUID) (*entity.CheckIn, error)

	// GetActiveCheckIns lists active check-ins, optionally scoped to one
	// venue by passing a non-empty venueID.
	GetActiveCheckIns(ctx context.Context, venueID string) ([]*entity.CheckIn, error)

	// SubmitWaitTime reports the current wait at a venue.
	SubmitWaitTime(ctx context.Context, venue entity.Venue, minutes int, loc entity.Coordinate) error
}
