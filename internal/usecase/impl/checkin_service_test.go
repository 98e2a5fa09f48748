package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"aroundtheblock/internal/domain/entity"
	domainerrors "aroundtheblock/internal/domain/errors"
	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/domain/service"
	mockRepo "aroundtheblock/internal/mocks/repository"
	mockService "aroundtheblock/internal/mocks/service"
	"aroundtheblock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkInServiceFixtures holds all test dependencies for check-in service tests.
type checkInServiceFixtures struct {
	service        usecase.CheckInUsecase
	checkInRepo    *mockRepo.MockCheckInRepository
	venueRepo      *mockRepo.MockVenueRepository
	eventPublisher *mockService.MockEventPublisher
}

func createTestCheckInService(t *testing.T) checkInServiceFixtures {
	checkInRepo := mockRepo.NewMockCheckInRepository(t)
	venueRepo := mockRepo.NewMockVenueRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)

	svc := NewCheckInService(CheckInServiceParams{
		CheckInRepo:    checkInRepo,
		VenueRepo:      venueRepo,
		EventPublisher: eventPublisher,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return checkInServiceFixtures{
		service:        svc,
		checkInRepo:    checkInRepo,
		venueRepo:      venueRepo,
		eventPublisher: eventPublisher,
	}
}

func barFixture() *entity.Venue {
	return &entity.Venue{
		ID:   "osm-node-42",
		Name: "The Thirsty Scholar",
		Location: entity.Coordinate{
			Latitude:  40.0,
			Longitude: -73.0,
		},
	}
}

func TestCheckInService_CreateCheckIn_KnownVenue(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()
	venue := barFixture()

	fx.venueRepo.EXPECT().
		FindVenueByID(ctx, venue.ID).
		Return(venue, nil)

	fx.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishCheckInEvent(ctx, mock.MatchedBy(func(event *service.CheckInEvent) bool {
			return event.Type == service.CheckInEventCreated && event.VenueID == venue.ID
		})).
		Return(nil)

	checkIn, err := fx.service.CreateCheckIn(ctx, &usecase.CreateCheckInInput{
		UserID:   userID,
		VenueID:  venue.ID,
		Location: venue.Location,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, checkIn.UserID)
	assert.Equal(t, venue.ID, checkIn.VenueID)
	assert.Equal(t, venue.Name, checkIn.VenueName)
	assert.True(t, checkIn.IsActive)
}

func TestCheckInService_CreateCheckIn_Conflict(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	venue := barFixture()

	fx.venueRepo.EXPECT().
		FindVenueByID(ctx, venue.ID).
		Return(venue, nil)

	fx.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(repository.ErrActiveCheckInExists)

	checkIn, err := fx.service.CreateCheckIn(ctx, &usecase.CreateCheckInInput{
		UserID:   uuid.New(),
		VenueID:  venue.ID,
		Location: venue.Location,
	})
	assert.Nil(t, checkIn)
	assert.ErrorIs(t, err, domainerrors.ErrCheckInConflict)
}

func TestCheckInService_CreateCheckIn_IngestsUnknownVenue(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	venue := barFixture()

	fx.venueRepo.EXPECT().
		FindVenueByID(ctx, venue.ID).
		Return(nil, repository.ErrVenueNotFound)

	fx.venueRepo.EXPECT().
		UpsertVenue(ctx, mock.MatchedBy(func(v *entity.Venue) bool {
			return v.ID == venue.ID && v.Name == venue.Name
		})).
		Return(nil)

	fx.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishCheckInEvent(ctx, mock.AnythingOfType("*service.CheckInEvent")).
		Return(nil)

	checkIn, err := fx.service.CreateCheckIn(ctx, &usecase.CreateCheckInInput{
		UserID:    uuid.New(),
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Location:  venue.Location,
	})
	require.NoError(t, err)
	assert.Equal(t, venue.Name, checkIn.VenueName)
}

func TestCheckInService_CreateCheckIn_UnknownVenueWithoutName(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()

	fx.venueRepo.EXPECT().
		FindVenueByID(ctx, "osm-node-404").
		Return(nil, repository.ErrVenueNotFound)

	checkIn, err := fx.service.CreateCheckIn(ctx, &usecase.CreateCheckInInput{
		UserID:   uuid.New(),
		VenueID:  "osm-node-404",
		Location: entity.Coordinate{Latitude: 40.0, Longitude: -73.0},
	})
	assert.Nil(t, checkIn)
	assert.ErrorIs(t, err, domainerrors.ErrVenueNotFound)
}

func TestCheckInService_CreateCheckIn_InvalidCoordinate(t *testing.T) {
	fx := createTestCheckInService(t)

	checkIn, err := fx.service.CreateCheckIn(context.Background(), &usecase.CreateCheckInInput{
		UserID:   uuid.New(),
		VenueID:  "osm-node-42",
		Location: entity.Coordinate{Latitude: 200.0, Longitude: -73.0},
	})
	assert.Nil(t, checkIn)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestCheckInService_CreateCheckIn_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	venue := barFixture()

	fx.venueRepo.EXPECT().
		FindVenueByID(ctx, venue.ID).
		Return(venue, nil)

	fx.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishCheckInEvent(ctx, mock.AnythingOfType("*service.CheckInEvent")).
		Return(errors.New("broker unavailable"))

	checkIn, err := fx.service.CreateCheckIn(ctx, &usecase.CreateCheckInInput{
		UserID:   uuid.New(),
		VenueID:  venue.ID,
		Location: venue.Location,
	})
	require.NoError(t, err)
	assert.NotNil(t, checkIn)
}

func TestCheckInService_EndCheckIn_Success(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	checkInID := uuid.New()
	ended := &entity.CheckIn{
		ID:        checkInID,
		UserID:    uuid.New(),
		VenueID:   "osm-node-42",
		VenueName: "The Thirsty Scholar",
	}

	fx.checkInRepo.EXPECT().
		EndCheckIn(ctx, checkInID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.checkInRepo.EXPECT().
		FindCheckInByID(ctx, checkInID).
		Return(ended, nil)

	fx.eventPublisher.EXPECT().
		PublishCheckInEvent(ctx, mock.MatchedBy(func(event *service.CheckInEvent) bool {
			return event.Type == service.CheckInEventEnded && event.CheckInID == checkInID.String()
		})).
		Return(nil)

	err := fx.service.EndCheckIn(ctx, checkInID)
	require.NoError(t, err)
}

func TestCheckInService_EndCheckIn_AlreadyEnded(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	checkInID := uuid.New()

	fx.checkInRepo.EXPECT().
		EndCheckIn(ctx, checkInID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrCheckInNotFound)

	err := fx.service.EndCheckIn(ctx, checkInID)
	assert.ErrorIs(t, err, domainerrors.ErrCheckInNotFound)
}

func TestCheckInService_EndCheckIn_ReloadFailureStillSucceeds(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	checkInID := uuid.New()

	fx.checkInRepo.EXPECT().
		EndCheckIn(ctx, checkInID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.checkInRepo.EXPECT().
		FindCheckInByID(ctx, checkInID).
		Return(nil, errors.New("connection reset"))

	err := fx.service.EndCheckIn(ctx, checkInID)
	require.NoError(t, err)
}

func TestCheckInService_GetUserCheckIns_ActiveOnlyEmpty(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.checkInRepo.EXPECT().
		FindActiveCheckInByUser(ctx, userID).
		Return(nil, repository.ErrCheckInNotFound)

	checkIns, err := fx.service.GetUserCheckIns(ctx, userID, true)
	require.NoError(t, err)
	assert.Empty(t, checkIns)
}

func TestCheckInService_GetUserCheckIns_History(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	userID := uuid.New()
	history := []*entity.CheckIn{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	fx.checkInRepo.EXPECT().
		FindCheckInsByUser(ctx, userID).
		Return(history, nil)

	checkIns, err := fx.service.GetUserCheckIns(ctx, userID, false)
	require.NoError(t, err)
	assert.Equal(t, history, checkIns)
}
