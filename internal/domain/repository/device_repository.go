// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// RegisterDevice persists a device, updating the FCM token when the
	// device is already known.
	RegisterDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesForUsers retrieves all active devices for the given users.
	FindActiveDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevicesByToken marks the devices holding the given FCM tokens
	// inactive. Used to clean up tokens Firebase reports as dead.
	DeactivateDevicesByToken(ctx context.Context, fcmTokens []string) error
}
