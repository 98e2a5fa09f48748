package service

import (
	"context"
)

// Check-in event types carried on the bus.
const (
	CheckInEventCreated = "checkin.created"
	CheckInEventEnded   = "checkin.ended"
)

// CheckInEvent represents a check-in lifecycle event to be processed by the
// notifier worker.
type CheckInEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	Type      string  `json:"type"`                 // CheckInEventCreated or CheckInEventEnded
	CheckInID string  `json:"checkin_id"`
	UserID    string  `json:"user_id"`
	VenueID   string  `json:"venue_id"`
	VenueName string  `json:"venue_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckInEvent publishes a check-in lifecycle event for async processing
	PublishCheckInEvent(ctx context.Context, event *CheckInEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
