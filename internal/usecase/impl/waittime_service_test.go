package impl

import (
	"context"
	"testing"
	"time"

	"aroundtheblock/config"
	"aroundtheblock/internal/domain/entity"
	domainerrors "aroundtheblock/internal/domain/errors"
	"aroundtheblock/internal/domain/repository"
	mockRepo "aroundtheblock/internal/mocks/repository"
	"aroundtheblock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type waitTimeServiceFixtures struct {
	service      usecase.WaitTimeUsecase
	waitTimeRepo *mockRepo.MockWaitTimeRepository
	venueRepo    *mockRepo.MockVenueRepository
}

func createTestWaitTimeService(t *testing.T) waitTimeServiceFixtures {
	waitTimeRepo := mockRepo.NewMockWaitTimeRepository(t)
	venueRepo := mockRepo.NewMockVenueRepository(t)

	svc := NewWaitTimeService(WaitTimeServiceParams{
		WaitTimeRepo: waitTimeRepo,
		VenueRepo:    venueRepo,
		Config: &config.Config{
			Monitor: &config.MonitorConfig{
				ProximityRadiusMeters: 100,
			},
		},
	})

	return waitTimeServiceFixtures{
		service:      svc,
		waitTimeRepo: waitTimeRepo,
		venueRepo:    venueRepo,
	}
}

func TestWaitTimeService_SubmitWaitTime_Success(t *testing.T) {
	fx := createTestWaitTimeService(t)

	ctx := context.Background()
	venue := barFixture()
	reporter := uuid.New()

	// Roughly 30 meters north of the bar, inside the 100 m radius.
	atTheBar := entity.Coordinate{Latitude: 40.00027, Longitude: -73.0}

	fx.venueRepo.EXPECT().
		FindVenueByID(ctx, venue.ID).
		Return(venue, nil)

	fx.waitTimeRepo.EXPECT().
		CreateWaitTime(ctx, mock.AnythingOfType("*entity.WaitTime")).
		Return(nil)

	waitTime, err := fx.service.SubmitWaitTime(ctx, &usecase.SubmitWaitTimeInput{
		VenueID:    venue.ID,
		Minutes:    20,
		Location:   atTheBar,
		ReportedBy: reporter,
	})
	require.NoError(t, err)
	assert.Equal(t, venue.ID, waitTime.VenueID)
	assert.Equal(t, venue.Name, waitTime.VenueName)
	assert.Equal(t, 20, waitTime.Minutes)
	assert.Equal(t, reporter, waitTime.ReportedBy)
	assert.False(t, waitTime.ReportedAt.IsZero())
}

func TestWaitTimeService_SubmitWaitTime_TooFar(t *testing.T) {
	fx := createTestWaitTimeService(t)

	ctx := context.Background()
	venue := barFixture()

	// Roughly 550 meters away, well past the radius.
	acrossTown := entity.Coordinate{Latitude: 40.005, Longitude: -73.0}

	fx.venueRepo.EXPECT().
		FindVenueByID(ctx, venue.ID).
		Return(venue, nil)

	waitTime, err := fx.service.SubmitWaitTime(ctx, &usecase.SubmitWaitTimeInput{
		VenueID:    venue.ID,
		Minutes:    20,
		Location:   acrossTown,
		ReportedBy: uuid.New(),
	})
	assert.Nil(t, waitTime)
	assert.ErrorIs(t, err, domainerrors.ErrTooFar)
}

func TestWaitTimeService_SubmitWaitTime_UnknownVenue(t *testing.T) {
	fx := createTestWaitTimeService(t)

	ctx := context.Background()

	fx.venueRepo.EXPECT().
		FindVenueByID(ctx, "osm-node-404").
		Return(nil, repository.ErrVenueNotFound)

	waitTime, err := fx.service.SubmitWaitTime(ctx, &usecase.SubmitWaitTimeInput{
		VenueID:    "osm-node-404",
		Minutes:    20,
		Location:   entity.Coordinate{Latitude: 40.0, Longitude: -73.0},
		ReportedBy: uuid.New(),
	})
	assert.Nil(t, waitTime)
	assert.ErrorIs(t, err, domainerrors.ErrVenueNotFound)
}

func TestWaitTimeService_SubmitWaitTime_MinutesOutOfRange(t *testing.T) {
	fx := createTestWaitTimeService(t)

	tests := []struct {
		name    string
		minutes int
	}{
		{name: "negative", minutes: -1},
		{name: "above maximum", minutes: 241},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			waitTime, err := fx.service.SubmitWaitTime(context.Background(), &usecase.SubmitWaitTimeInput{
				VenueID:    "osm-node-42",
				Minutes:    tt.minutes,
				Location:   entity.Coordinate{Latitude: 40.0, Longitude: -73.0},
				ReportedBy: uuid.New(),
			})
			assert.Nil(t, waitTime)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestWaitTimeService_SubmitWaitTime_InvalidCoordinate(t *testing.T) {
	fx := createTestWaitTimeService(t)

	waitTime, err := fx.service.SubmitWaitTime(context.Background(), &usecase.SubmitWaitTimeInput{
		VenueID:    "osm-node-42",
		Minutes:    20,
		Location:   entity.Coordinate{Latitude: 40.0, Longitude: -190.0},
		ReportedBy: uuid.New(),
	})
	assert.Nil(t, waitTime)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestWaitTimeService_GetRecentWaitTimes(t *testing.T) {
	fx := createTestWaitTimeService(t)

	ctx := context.Background()
	reports := []*entity.WaitTime{
		{ID: uuid.New(), VenueID: "osm-node-42", Minutes: 30},
		{ID: uuid.New(), VenueID: "osm-node-42", Minutes: 15},
	}

	fx.waitTimeRepo.EXPECT().
		FindRecentByVenue(ctx, "osm-node-42", mock.MatchedBy(func(since time.Time) bool {
			// Default window is two hours.
			return time.Since(since) > time.Hour
		})).
		Return(reports, nil)

	waitTimes, err := fx.service.GetRecentWaitTimes(ctx, "osm-node-42")
	require.NoError(t, err)
	assert.Equal(t, reports, waitTimes)
}
