package impl

import (
	"context"
	"fmt"
	"log/slog"

	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/domain/service"
	"aroundtheblock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	friendRepo      repository.FriendRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	FriendRepo      repository.FriendRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates the check-in fan-out service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		friendRepo:      params.FriendRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

// HandleCheckInEvent fans a check-in event out to the user's friends. Only
// created events notify anyone; ended events are acknowledged silently so
// the feed stays quiet when people head home.
func (s *notificationService) HandleCheckInEvent(ctx context.Context, event *service.CheckInEvent) error {
	if event.Type != service.CheckInEventCreated {
		s.logger.Debug("[Worker] Ignoring non-created check-in event",
			slog.String("type", event.Type),
			slog.String("checkin_id", event.CheckInID),
		)

		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user ID in check-in event")
	}

	friendIDs, err := s.friendRepo.FindFriendIDs(ctx, userID)
	if err != nil {
		return usecase.NewRetryableError(errors.WithStack(err))
	}

	if len(friendIDs) == 0 {
		s.logger.Info("[Worker] No friends to notify",
			slog.String("checkin_id", event.CheckInID),
		)

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesForUsers(ctx, friendIDs)
	if err != nil {
		return usecase.NewRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		s.logger.Info("[Worker] No devices found for friends",
			slog.String("checkin_id", event.CheckInID),
		)

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title, body, data := s.prepareNotificationContent(event)

	totalSent, totalFailed, invalidTokens, sendErr := s.sendBatchedNotifications(ctx, tokens, title, body, data)

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateDevicesByToken(ctx, invalidTokens); err != nil {
			s.logger.Warn("[Worker] Failed to deactivate invalid device tokens",
				slog.Int("token_count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	s.logger.Info("[Worker] Check-in fan-out completed",
		slog.String("checkin_id", event.CheckInID),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	// Every batch failing outright points at an FCM outage, not bad data.
	if sendErr != nil && totalSent == 0 {
		return usecase.NewRetryableError(sendErr)
	}

	return nil
}

// prepareNotificationContent creates the notification title, body, and data
func (s *notificationService) prepareNotificationContent(event *service.CheckInEvent) (title, body string, data map[string]string) {
	title = "Around the Block"
	body = fmt.Sprintf("A friend just checked in at %s", event.VenueName)

	data = map[string]string{
		"checkin_id": event.CheckInID,
		"user_id":    event.UserID,
		"venue_id":   event.VenueID,
		"venue_name": event.VenueName,
		"latitude":   fmt.Sprintf("%f", event.Latitude),
		"longitude":  fmt.Sprintf("%f", event.Longitude),
	}

	return title, body, data
}

// sendBatchedNotifications sends notifications in Firebase-sized batches.
func (s *notificationService) sendBatchedNotifications(ctx context.Context, tokens []string, title, body string, data map[string]string) (sent, failed int, invalidTokens []string, err error) {
	const batchSize = 500

	var lastErr error
	for idx := 0; idx < len(tokens); idx += batchSize {
		end := min(idx+batchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalidTokens, sendErr := s.notificationSvc.SendBatchNotification(
			ctx, batch, title, body, data,
		)
		if sendErr != nil {
			s.logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failed += len(batch)
			lastErr = sendErr

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	return sent, failed, invalidTokens, lastErr
}
