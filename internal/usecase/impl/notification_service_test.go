package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"aroundtheblock/internal/domain/entity"
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

type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	friendRepo      *mockRepo.MockFriendRepository
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	friendRepo := mockRepo.NewMockFriendRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	svc := NewNotificationService(NotificationServiceParams{
		FriendRepo:      friendRepo,
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return notificationServiceFixtures{
		service:         svc,
		friendRepo:      friendRepo,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func checkInEventFixture(userID uuid.UUID) *service.CheckInEvent {
	return &service.CheckInEvent{
		Type:      service.CheckInEventCreated,
		CheckInID: uuid.New().String(),
		UserID:    userID.String(),
		VenueID:   "osm-node-42",
		VenueName: "The Thirsty Scholar",
		Latitude:  40.0,
		Longitude: -73.0,
	}
}

func TestNotificationService_HandleCheckInEvent_FansOutToFriends(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := checkInEventFixture(userID)
	friendIDs := []uuid.UUID{uuid.New(), uuid.New()}
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: friendIDs[0], FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), UserID: friendIDs[1], FCMToken: "token-2", IsActive: true},
	}

	fx.friendRepo.EXPECT().
		FindFriendIDs(ctx, userID).
		Return(friendIDs, nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(ctx, friendIDs).
		Return(devices, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1", "token-2"}, "Around the Block",
			"A friend just checked in at The Thirsty Scholar", map[string]string{
				"checkin_id": event.CheckInID,
				"user_id":    event.UserID,
				"venue_id":   event.VenueID,
				"venue_name": event.VenueName,
				"latitude":   "40.000000",
				"longitude":  "-73.000000",
			}).
		Return(2, 0, nil, nil)

	err := fx.service.HandleCheckInEvent(ctx, event)
	require.NoError(t, err)
}

func TestNotificationService_HandleCheckInEvent_IgnoresEndedEvents(t *testing.T) {
	fx := createTestNotificationService(t)

	event := checkInEventFixture(uuid.New())
	event.Type = service.CheckInEventEnded

	err := fx.service.HandleCheckInEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestNotificationService_HandleCheckInEvent_InvalidUserID(t *testing.T) {
	fx := createTestNotificationService(t)

	event := checkInEventFixture(uuid.New())
	event.UserID = "not-a-uuid"

	err := fx.service.HandleCheckInEvent(context.Background(), event)
	require.Error(t, err)
	assert.False(t, usecase.IsRetryableError(err))
}

func TestNotificationService_HandleCheckInEvent_FriendLookupFailureIsRetryable(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.friendRepo.EXPECT().
		FindFriendIDs(ctx, userID).
		Return(nil, errors.New("connection refused"))

	err := fx.service.HandleCheckInEvent(ctx, checkInEventFixture(userID))
	require.Error(t, err)
	assert.True(t, usecase.IsRetryableError(err))
}

func TestNotificationService_HandleCheckInEvent_NoFriends(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.friendRepo.EXPECT().
		FindFriendIDs(ctx, userID).
		Return(nil, nil)

	err := fx.service.HandleCheckInEvent(ctx, checkInEventFixture(userID))
	require.NoError(t, err)
}

func TestNotificationService_HandleCheckInEvent_NoActiveDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendIDs := []uuid.UUID{uuid.New()}

	fx.friendRepo.EXPECT().
		FindFriendIDs(ctx, userID).
		Return(friendIDs, nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(ctx, friendIDs).
		Return(nil, nil)

	err := fx.service.HandleCheckInEvent(ctx, checkInEventFixture(userID))
	require.NoError(t, err)
}

func TestNotificationService_HandleCheckInEvent_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendIDs := []uuid.UUID{uuid.New(), uuid.New()}
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: friendIDs[0], FCMToken: "token-good", IsActive: true},
		{ID: uuid.New(), UserID: friendIDs[1], FCMToken: "token-stale", IsActive: true},
	}

	fx.friendRepo.EXPECT().
		FindFriendIDs(ctx, userID).
		Return(friendIDs, nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(ctx, friendIDs).
		Return(devices, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-good", "token-stale"},
			mock.AnythingOfType("string"), mock.AnythingOfType("string"),
			mock.AnythingOfType("map[string]string")).
		Return(1, 1, []string{"token-stale"}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateDevicesByToken(ctx, []string{"token-stale"}).
		Return(nil)

	err := fx.service.HandleCheckInEvent(ctx, checkInEventFixture(userID))
	require.NoError(t, err)
}

func TestNotificationService_HandleCheckInEvent_TotalSendFailureIsRetryable(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	friendIDs := []uuid.UUID{uuid.New()}
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: friendIDs[0], FCMToken: "token-1", IsActive: true},
	}

	fx.friendRepo.EXPECT().
		FindFriendIDs(ctx, userID).
		Return(friendIDs, nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(ctx, friendIDs).
		Return(devices, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"},
			mock.AnythingOfType("string"), mock.AnythingOfType("string"),
			mock.AnythingOfType("map[string]string")).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	err := fx.service.HandleCheckInEvent(ctx, checkInEventFixture(userID))
	require.Error(t, err)
	assert.True(t, usecase.IsRetryableError(err))
}
