// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"aroundtheblock/internal/domain/entity"
	domainerrors "aroundtheblock/internal/domain/errors"
	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkInRepository implements the repository.CheckInRepository interface.
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{
		db: db,
	}
}

// CreateCheckIn persists a new active check-in. The partial unique index on
// (user_id) where is_active turns a concurrent double-create into a unique
// violation, which we report as ErrActiveCheckInExists.
func (repo *checkInRepository) CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) error {
	checkInM := fromCheckInDomain(checkIn)
	checkInM.IsActive = true

	if err := repo.db.WithContext(ctx).Create(checkInM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveCheckInExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required check-in information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create check-in")
	}

	// Update the entity with generated values
	checkIn.ID = checkInM.ID
	checkIn.IsActive = checkInM.IsActive

	return nil
}

// FindCheckInByID retrieves a check-in by its unique ID.
func (repo *checkInRepository) FindCheckInByID(ctx context.Context, id uuid.UUID) (*entity.CheckIn, error) {
	var checkInM model.CheckInModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&checkInM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in by ID")
	}

	return toCheckInDomain(&checkInM), nil
}

// FindActiveCheckInByUser retrieves the user's current active check-in.
func (repo *checkInRepository) FindActiveCheckInByUser(ctx context.Context, userID uuid.UUID) (*entity.CheckIn, error) {
	var checkInM model.CheckInModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&checkInM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find active check-in by user")
	}

	return toCheckInDomain(&checkInM), nil
}

// FindCheckInsByUser retrieves a user's check-in history, newest first.
func (repo *checkInRepository) FindCheckInsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CheckIn, error) {
	var checkInModels []*model.CheckInModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&checkInModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find check-ins by user")
	}

	return toCheckInDomainList(checkInModels), nil
}

// FindActiveCheckIns retrieves all currently active check-ins.
func (repo *checkInRepository) FindActiveCheckIns(ctx context.Context) ([]*entity.CheckIn, error) {
	var checkInModels []*model.CheckInModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("started_at DESC").
		Find(&checkInModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active check-ins")
	}

	return toCheckInDomainList(checkInModels), nil
}

// FindActiveCheckInsByVenue retrieves active check-ins at one venue.
func (repo *checkInRepository) FindActiveCheckInsByVenue(ctx context.Context, venueID string) ([]*entity.CheckIn, error) {
	var checkInModels []*model.CheckInModel

	if err := repo.db.WithContext(ctx).
		Where("venue_id = ? AND is_active = ?", venueID, true).
		Order("started_at DESC").
		Find(&checkInModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active check-ins by venue")
	}

	return toCheckInDomainList(checkInModels), nil
}

// EndCheckIn marks a check-in inactive. Updating only active rows makes the
// operation naturally idempotent: a second end on the same check-in affects
// zero rows and reports not-found, which callers map to an already-ended
// response.
func (repo *checkInRepository) EndCheckIn(ctx context.Context, id uuid.UUID, endedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckInModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active": false,
			"ended_at":  endedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to end check-in")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCheckInNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCheckInDomain converts a GORM CheckInModel to a domain CheckIn entity.
func toCheckInDomain(data *model.CheckInModel) *entity.CheckIn {
	if data == nil {
		return nil
	}

	return &entity.CheckIn{
		ID:        data.ID,
		UserID:    data.UserID,
		VenueID:   data.VenueID,
		VenueName: data.VenueName,
		Location: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		StartedAt: data.StartedAt,
		EndedAt:   data.EndedAt,
		IsActive:  data.IsActive,
	}
}

func toCheckInDomainList(models []*model.CheckInModel) []*entity.CheckIn {
	checkIns := make([]*entity.CheckIn, 0, len(models))
	for _, checkInM := range models {
		checkIns = append(checkIns, toCheckInDomain(checkInM))
	}

	return checkIns
}

// fromCheckInDomain converts a domain CheckIn entity to a GORM CheckInModel.
func fromCheckInDomain(data *entity.CheckIn) *model.CheckInModel {
	if data == nil {
		return nil
	}

	return &model.CheckInModel{
		ID:        data.ID,
		UserID:    data.UserID,
		VenueID:   data.VenueID,
		VenueName: data.VenueName,
		Latitude:  data.Location.Latitude,
		Longitude: data.Location.Longitude,
		StartedAt: data.StartedAt,
		EndedAt:   data.EndedAt,
		IsActive:  data.IsActive,
	}
}
