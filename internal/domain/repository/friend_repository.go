// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// FriendRepository reads the confirmed friendship edges used for
// notification fan-out.
type FriendRepository interface {
	// FindFriendIDs retrieves the IDs of everyone the user is friends with.
	FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
