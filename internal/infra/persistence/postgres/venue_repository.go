package postgres

import (
	"context"

	"aroundtheblock/internal/domain/entity"
	domainerrors "aroundtheblock/internal/domain/errors"
	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// venueRepository implements the repository.VenueRepository interface.
type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository is the constructor for venueRepository.
func NewVenueRepository(db *gorm.DB) repository.VenueRepository {
	return &venueRepository{
		db: db,
	}
}

// UpsertVenue creates the venue or refreshes name/location on conflict with
// the external directory identifier.
func (repo *venueRepository) UpsertVenue(ctx context.Context, venue *entity.Venue) error {
	venueM := fromVenueDomain(venue)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "latitude", "longitude", "updated_at"}),
		}).
		Create(venueM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required venue information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert venue")
	}

	venue.CreatedAt = venueM.CreatedAt
	venue.UpdatedAt = venueM.UpdatedAt

	return nil
}

// FindVenueByID retrieves a venue by its external identifier.
func (repo *venueRepository) FindVenueByID(ctx context.Context, id string) (*entity.Venue, error) {
	var venueM model.VenueModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&venueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to find venue by ID")
	}

	return toVenueDomain(&venueM), nil
}

// FindVenuesWithin retrieves venues inside a bounding box around center.
// The box over-approximates the circle; callers rank and cut by exact
// haversine distance.
func (repo *venueRepository) FindVenuesWithin(ctx context.Context, center entity.Coordinate, radiusMeters float64) ([]*entity.Venue, error) {
	bound := orbgeo.NewBoundAroundPoint(orb.Point{center.Longitude, center.Latitude}, radiusMeters)

	var venueModels []*model.VenueModel
	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Find(&venueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find venues within bounds")
	}

	venues := make([]*entity.Venue, 0, len(venueModels))
	for _, venueM := range venueModels {
		venues = append(venues, toVenueDomain(venueM))
	}

	return venues, nil
}

// --- Mapper Functions ---

func toVenueDomain(data *model.VenueModel) *entity.Venue {
	if data == nil {
		return nil
	}

	return &entity.Venue{
		ID:   data.ID,
		Name: data.Name,
		Location: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromVenueDomain(data *entity.Venue) *model.VenueModel {
	if data == nil {
		return nil
	}

	return &model.VenueModel{
		ID:        data.ID,
		Name:      data.Name,
		Latitude:  data.Location.Latitude,
		Longitude: data.Location.Longitude,
	}
}
