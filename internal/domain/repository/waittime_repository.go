// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"aroundtheblock/internal/domain/entity"
)

// WaitTimeRepository defines the interface for wait-time report persistence.
type WaitTimeRepository interface {
	// CreateWaitTime persists a new wait-time report.
	CreateWaitTime(ctx context.Context, waitTime *entity.WaitTime) error

	// FindRecentByVenue retrieves reports for a venue submitted after since,
	// newest first.
	FindRecentByVenue(ctx context.Context, venueID string, since time.Time) ([]*entity.WaitTime, error)
}
