package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"aroundtheblock/internal/delivery/http/middleware"
	"aroundtheblock/internal/delivery/http/response"
	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VenueHandlerParams holds dependencies for VenueHandler, injected by Fx.
type VenueHandlerParams struct {
	fx.In

	VenueUC usecase.VenueUsecase
	Logger  *slog.Logger
}

// VenueHandler holds dependencies for venue-related handlers
type VenueHandler struct {
	venueUC usecase.VenueUsecase
	logger  *slog.Logger
}

// NewVenueHandler is the constructor for VenueHandler
func NewVenueHandler(params VenueHandlerParams) *VenueHandler {
	return &VenueHandler{
		venueUC: params.VenueUC,
		logger:  params.Logger,
	}
}

// UpsertVenueRequest represents the request body for catalog ingest
type UpsertVenueRequest struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpsertVenue handles ingesting or refreshing one bar in the catalog
func (h *VenueHandler) UpsertVenue(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpsertVenueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid venue input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	venue, err := h.venueUC.UpsertVenue(c.Request().Context(), &usecase.UpsertVenueInput{
		ID:   req.ID,
		Name: req.Name,
		Location: entity.Coordinate{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, venue, "Venue saved successfully")
}

// GetVenue handles retrieving a single bar by its identifier
func (h *VenueHandler) GetVenue(c echo.Context) error {
	venueID := c.Param("id")
	if venueID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid bar ID")
	}

	venue, err := h.venueUC.GetVenue(c.Request().Context(), venueID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, venue, "Venue retrieved successfully")
}

// GetNearbyVenues handles retrieving bars near a coordinate, closest first
func (h *VenueHandler) GetNearbyVenues(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "Invalid lat query parameter")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "Invalid lng query parameter")
	}

	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "Invalid radius query parameter")
		}
	}

	venues, err := h.venueUC.FindNearbyVenues(c.Request().Context(), entity.Coordinate{
		Latitude:  lat,
		Longitude: lng,
	}, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, venues, "Nearby venues retrieved successfully")
}

// GetVenueQR handles rendering the bar's check-in QR code as a PNG
func (h *VenueHandler) GetVenueQR(c echo.Context) error {
	venueID := c.Param("id")
	if venueID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid bar ID")
	}

	qrCode, err := h.venueUC.GenerateVenueQR(c.Request().Context(), venueID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=venue-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
