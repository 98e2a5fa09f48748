package postgres

import (
	"context"

	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendRepository implements the repository.FriendRepository interface.
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository is the constructor for friendRepository.
func NewFriendRepository(db *gorm.DB) repository.FriendRepository {
	return &friendRepository{
		db: db,
	}
}

// FindFriendIDs retrieves the IDs of everyone the user is friends with.
func (repo *friendRepository) FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var friendIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &friendIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friend IDs")
	}

	return friendIDs, nil
}
