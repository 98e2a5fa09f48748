// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "aroundtheblock/internal/delivery/context"
	"aroundtheblock/internal/domain/entity"
	domainerrors "aroundtheblock/internal/domain/errors"
	"aroundtheblock/internal/domain/geo"
	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/domain/service"
	"aroundtheblock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkInService struct {
	checkInRepo    repository.CheckInRepository
	venueRepo      repository.VenueRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// CheckInServiceParams holds dependencies for CheckInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	CheckInRepo    repository.CheckInRepository
	VenueRepo      repository.VenueRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewCheckInService creates a new check-in service instance
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	return &checkInService{
		checkInRepo:    params.CheckInRepo,
		venueRepo:      params.VenueRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// CreateCheckIn opens a check-in for the user at the venue. The database's
// partial unique index is the authority on the one-active-check-in rule;
// this method translates its verdict into a conflict the client can treat
// as idempotent.
func (s *checkInService) CreateCheckIn(ctx context.Context, input *usecase.CreateCheckInInput) (*entity.CheckIn, error) {
	if !geo.IsValid(input.Location) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	venue, err := s.resolveVenue(ctx, input)
	if err != nil {
		return nil, err
	}

	checkIn := &entity.CheckIn{
		ID:        uuid.New(),
		UserID:    input.UserID,
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Location:  venue.Location,
		StartedAt: time.Now(),
		IsActive:  true,
	}

	if err := s.checkInRepo.CreateCheckIn(ctx, checkIn); err != nil {
		if errors.Is(err, repository.ErrActiveCheckInExists) {
			return nil, domainerrors.ErrCheckInConflict
		}

		return nil, errors.Wrap(err, "failed to create check-in")
	}

	s.publishEvent(ctx, service.CheckInEventCreated, checkIn)

	return checkIn, nil
}

// EndCheckIn closes the check-in. Ending one that was already ended reports
// not-found; callers treat that as already done.
func (s *checkInService) EndCheckIn(ctx context.Context, checkInID uuid.UUID) error {
	if err := s.checkInRepo.EndCheckIn(ctx, checkInID, time.Now()); err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			return domainerrors.ErrCheckInNotFound
		}

		return errors.Wrap(err, "failed to end check-in")
	}

	checkIn, err := s.checkInRepo.FindCheckInByID(ctx, checkInID)
	if err != nil {
		s.logger.Warn("check-in ended but could not be reloaded for event publishing",
			slog.String("checkin_id", checkInID.String()),
			slog.Any("error", err))

		return nil
	}

	s.publishEvent(ctx, service.CheckInEventEnded, checkIn)

	return nil
}

// GetUserCheckIns retrieves a user's check-ins.
func (s *checkInService) GetUserCheckIns(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.CheckIn, error) {
	if !activeOnly {
		checkIns, err := s.checkInRepo.FindCheckInsByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get user check-ins")
		}

		return checkIns, nil
	}

	checkIn, err := s.checkInRepo.FindActiveCheckInByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			return []*entity.CheckIn{}, nil
		}

		return nil, errors.Wrap(err, "failed to get active check-in")
	}

	return []*entity.CheckIn{checkIn}, nil
}

// GetActiveCheckIns retrieves every currently active check-in.
func (s *checkInService) GetActiveCheckIns(ctx context.Context) ([]*entity.CheckIn, error) {
	checkIns, err := s.checkInRepo.FindActiveCheckIns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active check-ins")
	}

	return checkIns, nil
}

// GetVenueCheckIns retrieves who is currently checked in at a venue.
func (s *checkInService) GetVenueCheckIns(ctx context.Context, venueID string) ([]*entity.CheckIn, error) {
	checkIns, err := s.checkInRepo.FindActiveCheckInsByVenue(ctx, venueID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get venue check-ins")
	}

	return checkIns, nil
}

// resolveVenue prefers the catalog's record of the venue; an unknown venue
// is ingested from the request so a bar missing from the last directory
// sync doesn't block a check-in.
func (s *checkInService) resolveVenue(ctx context.Context, input *usecase.CreateCheckInInput) (*entity.Venue, error) {
	venue, err := s.venueRepo.FindVenueByID(ctx, input.VenueID)
	if err == nil {
		return venue, nil
	}
	if !errors.Is(err, repository.ErrVenueNotFound) {
		return nil, errors.Wrap(err, "failed to find venue")
	}

	if input.VenueName == "" {
		return nil, domainerrors.ErrVenueNotFound
	}

	venue = &entity.Venue{
		ID:       input.VenueID,
		Name:     input.VenueName,
		Location: input.Location,
	}
	if err := s.venueRepo.UpsertVenue(ctx, venue); err != nil {
		return nil, errors.Wrap(err, "failed to ingest venue")
	}

	return venue, nil
}

// publishEvent pushes the lifecycle event onto the bus. Publishing is best
// effort; a bus outage must not fail the check-in itself.
func (s *checkInService) publishEvent(ctx context.Context, eventType string, checkIn *entity.CheckIn) {
	event := &service.CheckInEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		CheckInID: checkIn.ID.String(),
		UserID:    checkIn.UserID.String(),
		VenueID:   checkIn.VenueID,
		VenueName: checkIn.VenueName,
		Latitude:  checkIn.Location.Latitude,
		Longitude: checkIn.Location.Longitude,
	}

	if err := s.eventPublisher.PublishCheckInEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish check-in event",
			slog.String("checkin_id", checkIn.ID.String()),
			slog.String("type", eventType),
			slog.Any("error", err))
	}
}
