package impl

import (
	"context"
	"time"

	"aroundtheblock/config"
	"aroundtheblock/internal/domain/entity"
	domainerrors "aroundtheblock/internal/domain/errors"
	"aroundtheblock/internal/domain/geo"
	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxReportAge    = 2 * time.Hour
	defaultMaxReportMinute = 240
)

type waitTimeService struct {
	waitTimeRepo repository.WaitTimeRepository
	venueRepo    repository.VenueRepository
	config       *config.Config
}

// WaitTimeServiceParams holds dependencies for WaitTimeService, injected by Fx.
type WaitTimeServiceParams struct {
	fx.In

	WaitTimeRepo repository.WaitTimeRepository
	VenueRepo    repository.VenueRepository
	Config       *config.Config
}

// NewWaitTimeService creates a new wait-time service instance
func NewWaitTimeService(params WaitTimeServiceParams) usecase.WaitTimeUsecase {
	return &waitTimeService{
		waitTimeRepo: params.WaitTimeRepo,
		venueRepo:    params.VenueRepo,
		config:       params.Config,
	}
}

// SubmitWaitTime records a wait report. The client gates submission behind
// the proximity check, but the gate is enforced here too against the
// venue's stored location, with the same radius as check-in. A tampered
// client gets the same TOO_FAR the honest one would.
func (s *waitTimeService) SubmitWaitTime(ctx context.Context, input *usecase.SubmitWaitTimeInput) (*entity.WaitTime, error) {
	if !geo.IsValid(input.Location) {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if input.Minutes < 0 || input.Minutes > s.maxMinutes() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("wait minutes out of range")
	}

	venue, err := s.venueRepo.FindVenueByID(ctx, input.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to find venue for wait-time report")
	}

	if !geo.IsNear(&input.Location, &venue.Location, s.config.Monitor.ProximityRadiusMeters) {
		return nil, domainerrors.ErrTooFar
	}

	waitTime := &entity.WaitTime{
		ID:         uuid.New(),
		VenueID:    venue.ID,
		VenueName:  venue.Name,
		Minutes:    input.Minutes,
		Location:   input.Location,
		ReportedBy: input.ReportedBy,
		ReportedAt: time.Now(),
	}

	if err := s.waitTimeRepo.CreateWaitTime(ctx, waitTime); err != nil {
		return nil, errors.Wrap(err, "failed to create wait-time report")
	}

	return waitTime, nil
}

// GetRecentWaitTimes retrieves recent reports for a venue, newest first.
func (s *waitTimeService) GetRecentWaitTimes(ctx context.Context, venueID string) ([]*entity.WaitTime, error) {
	since := time.Now().Add(-s.maxReportAge())

	waitTimes, err := s.waitTimeRepo.FindRecentByVenue(ctx, venueID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get recent wait-time reports")
	}

	return waitTimes, nil
}

func (s *waitTimeService) maxReportAge() time.Duration {
	if s.config.WaitTime != nil && s.config.WaitTime.MaxReportAge > 0 {
		return s.config.WaitTime.MaxReportAge
	}

	return defaultMaxReportAge
}

func (s *waitTimeService) maxMinutes() int {
	if s.config.WaitTime != nil && s.config.WaitTime.MaxMinutes > 0 {
		return s.config.WaitTime.MaxMinutes
	}

	return defaultMaxReportMinute
}
