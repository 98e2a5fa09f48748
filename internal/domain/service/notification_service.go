package service

import (
	"context"
)

// NotificationService defines the interface for push notification delivery
type NotificationService interface {
	// SendBatchNotification sends a push notification to multiple device tokens.
	// Returns success count, failure count, the tokens FCM rejected as invalid,
	// and any transport-level error.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to one device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
