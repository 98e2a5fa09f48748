package impl

import (
	"context"
	"sort"

	"aroundtheblock/internal/domain/entity"
	domainerrors "aroundtheblock/internal/domain/errors"
	"aroundtheblock/internal/domain/geo"
	"aroundtheblock/internal/domain/repository"
	"aroundtheblock/internal/domain/service"
	"aroundtheblock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNearbyRadiusMeters = 1000.0

type venueService struct {
	venueRepo     repository.VenueRepository
	qrcodeService service.QRCodeService
}

// VenueServiceParams holds dependencies for VenueService, injected by Fx.
type VenueServiceParams struct {
	fx.In

	VenueRepo     repository.VenueRepository
	QRCodeService service.QRCodeService
}

// NewVenueService creates a new venue service instance
func NewVenueService(params VenueServiceParams) usecase.VenueUsecase {
	return &venueService{
		venueRepo:     params.VenueRepo,
		qrcodeService: params.QRCodeService,
	}
}

// UpsertVenue ingests or refreshes one venue from the directory feed.
func (s *venueService) UpsertVenue(ctx context.Context, input *usecase.UpsertVenueInput) (*entity.Venue, error) {
	if !geo.IsValid(input.Location) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	venue := &entity.Venue{
		ID:       input.ID,
		Name:     input.Name,
		Location: input.Location,
	}

	if err := s.venueRepo.UpsertVenue(ctx, venue); err != nil {
		return nil, errors.Wrap(err, "failed to upsert venue")
	}

	return venue, nil
}

// GetVenue retrieves a venue by its external identifier.
func (s *venueService) GetVenue(ctx context.Context, venueID string) (*entity.Venue, error) {
	venue, err := s.venueRepo.FindVenueByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to get venue")
	}

	return venue, nil
}

// FindNearbyVenues retrieves venues within radiusMeters of center, closest
// first. The repository's bounding box over-approximates the circle, so
// results are re-checked and ranked with the exact distance.
func (s *venueService) FindNearbyVenues(ctx context.Context, center entity.Coordinate, radiusMeters float64) ([]*entity.Venue, error) {
	if !geo.IsValid(center) {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if radiusMeters <= 0 {
		radiusMeters = defaultNearbyRadiusMeters
	}

	candidates, err := s.venueRepo.FindVenuesWithin(ctx, center, radiusMeters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby venues")
	}

	type ranked struct {
		venue    *entity.Venue
		distance float64
	}

	within := make([]ranked, 0, len(candidates))
	for _, venue := range candidates {
		d := geo.DistanceMeters(center, venue.Location)
		if d <= radiusMeters {
			within = append(within, ranked{venue: venue, distance: d})
		}
	}

	sort.Slice(within, func(i, j int) bool {
		return within[i].distance < within[j].distance
	})

	venues := make([]*entity.Venue, 0, len(within))
	for _, r := range within {
		venues = append(venues, r.venue)
	}

	return venues, nil
}

// GenerateVenueQR renders the venue's check-in QR code as PNG bytes.
func (s *venueService) GenerateVenueQR(ctx context.Context, venueID string) ([]byte, error) {
	if _, err := s.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}

	qrBytes, err := s.qrcodeService.GenerateVenueQR(venueID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate venue QR code")
	}

	return qrBytes, nil
}
