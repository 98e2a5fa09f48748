package handler

import (
	"log/slog"
	"net/http"

	"aroundtheblock/internal/delivery/http/middleware"
	"aroundtheblock/internal/delivery/http/response"
	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// CheckInHandler holds dependencies for check-in-related handlers
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
	}
}

// CreateCheckInRequest represents the request body for opening a check-in.
// Venue name and coordinates ride along so an unseen bar can be ingested on
// first contact.
type CreateCheckInRequest struct {
	VenueID   string  `json:"venue_id" validate:"required"`
	VenueName string  `json:"venue_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateCheckIn handles opening a check-in. Returns 409 when the user
// already has an active one.
func (h *CheckInHandler) CreateCheckIn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateCheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkIn, err := h.checkInUC.CreateCheckIn(c.Request().Context(), &usecase.CreateCheckInInput{
		UserID:    userID,
		VenueID:   req.VenueID,
		VenueName: req.VenueName,
		Location: entity.Coordinate{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, checkIn, "Checked in successfully")
}

// EndCheckIn handles closing a check-in. Returns 404 when the check-in does
// not exist or was already ended.
func (h *CheckInHandler) EndCheckIn(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	checkInID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid check-in ID")
	}

	if err := h.checkInUC.EndCheckIn(c.Request().Context(), checkInID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Checked out"}, "Checked out successfully")
}

// GetUserCheckIns handles retrieving a user's check-ins. The active=true
// query narrows the result to the current one.
func (h *CheckInHandler) GetUserCheckIns(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	activeOnly := c.QueryParam("active") == "true"

	checkIns, err := h.checkInUC.GetUserCheckIns(c.Request().Context(), userID, activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIns, "Check-ins retrieved successfully")
}

// GetActiveCheckIns handles retrieving every currently active check-in
func (h *CheckInHandler) GetActiveCheckIns(c echo.Context) error {
	checkIns, err := h.checkInUC.GetActiveCheckIns(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIns, "Active check-ins retrieved successfully")
}

// GetVenueCheckIns handles retrieving who is currently checked in at a venue
func (h *CheckInHandler) GetVenueCheckIns(c echo.Context) error {
	venueID := c.Param("barId")
	if venueID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid bar ID")
	}

	checkIns, err := h.checkInUC.GetVenueCheckIns(c.Request().Context(), venueID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIns, "Bar check-ins retrieved successfully")
}
