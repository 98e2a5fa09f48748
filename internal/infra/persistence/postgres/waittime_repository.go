package postgres

import (
	"context"
	"time"

	"aroundtheblock/internal/domain/entity"
	domainerrors "aroundtheblock/internal/domain/errors"
	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// waitTimeRepository implements the repository.WaitTimeRepository interface.
type waitTimeRepository struct {
	db *gorm.DB
}

// NewWaitTimeRepository is the constructor for waitTimeRepository.
func NewWaitTimeRepository(db *gorm.DB) repository.WaitTimeRepository {
	return &waitTimeRepository{
		db: db,
	}
}

// CreateWaitTime persists a new wait-time report.
func (repo *waitTimeRepository) CreateWaitTime(ctx context.Context, waitTime *entity.WaitTime) error {
	waitTimeM := fromWaitTimeDomain(waitTime)

	if err := repo.db.WithContext(ctx).Create(waitTimeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required wait-time information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wait-time report")
	}

	waitTime.ID = waitTimeM.ID

	return nil
}

// FindRecentByVenue retrieves reports for a venue submitted after since.
func (repo *waitTimeRepository) FindRecentByVenue(ctx context.Context, venueID string, since time.Time) ([]*entity.WaitTime, error) {
	var waitTimeModels []*model.WaitTimeModel

	if err := repo.db.WithContext(ctx).
		Where("venue_id = ? AND reported_at > ?", venueID, since).
		Order("reported_at DESC").
		Find(&waitTimeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent wait-time reports")
	}

	waitTimes := make([]*entity.WaitTime, 0, len(waitTimeModels))
	for _, waitTimeM := range waitTimeModels {
		waitTimes = append(waitTimes, toWaitTimeDomain(waitTimeM))
	}

	return waitTimes, nil
}

// --- Mapper Functions ---

func toWaitTimeDomain(data *model.WaitTimeModel) *entity.WaitTime {
	if data == nil {
		return nil
	}

	return &entity.WaitTime{
		ID:        data.ID,
		VenueID:   data.VenueID,
		VenueName: data.VenueName,
		Minutes:   data.Minutes,
		Location: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		ReportedBy: data.ReportedBy,
		ReportedAt: data.ReportedAt,
	}
}

func fromWaitTimeDomain(data *entity.WaitTime) *model.WaitTimeModel {
	if data == nil {
		return nil
	}

	return &model.WaitTimeModel{
		ID:         data.ID,
		VenueID:    data.VenueID,
		VenueName:  data.VenueName,
		Minutes:    data.Minutes,
		Latitude:   data.Location.Latitude,
		Longitude:  data.Location.Longitude,
		ReportedBy: data.ReportedBy,
		ReportedAt: data.ReportedAt,
	}
}
