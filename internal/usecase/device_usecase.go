package usecase

import (
	"context"

	"aroundtheblock/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device registration information
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for push-device registration use cases
type DeviceUsecase interface {
	// RegisterDevice registers or refreshes a device for push notifications.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)
}
