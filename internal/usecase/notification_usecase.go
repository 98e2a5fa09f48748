package usecase

import (
	"context"
	"fmt"

	"aroundtheblock/internal/domain/service"

	"github.com/pkg/errors"
)

// NotificationUsecase defines the interface for check-in notification fan-out
type NotificationUsecase interface {
	// HandleCheckInEvent fans a check-in event out to the user's friends as
	// push notifications. Retryable errors mean the caller should redeliver
	// the event; permanent conditions like an empty friend list are swallowed
	// after logging.
	HandleCheckInEvent(ctx context.Context, event *service.CheckInEvent) error
}

// retryableError wraps an error to indicate the event should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
