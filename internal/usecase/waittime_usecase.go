package usecase

import (
	"context"

	"aroundtheblock/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitWaitTimeInput carries one crowd-sourced wait report. Location is the
// reporter's fix at submission time; the server re-validates it against the
// venue before accepting.
type SubmitWaitTimeInput struct {
	VenueID    string
	VenueName  string
	Minutes    int
	Location   entity.Coordinate
	ReportedBy uuid.UUID
}

// WaitTimeUsecase defines the interface for wait-time report use cases
type WaitTimeUsecase interface {
	// SubmitWaitTime records a wait report. Returns ErrTooFar when the
	// reporter is outside the venue's proximity radius.
	SubmitWaitTime(ctx context.Context, input *SubmitWaitTimeInput) (*entity.WaitTime, error)

	// GetRecentWaitTimes retrieves recent reports for a venue, newest first.
	GetRecentWaitTimes(ctx context.Context, venueID string) ([]*entity.WaitTime, error)
}
