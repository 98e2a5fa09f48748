package handler

import (
	"log/slog"
	"net/http"

	"aroundtheblock/internal/delivery/http/middleware"
	"aroundtheblock/internal/delivery/http/response"
	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WaitTimeHandlerParams holds dependencies for WaitTimeHandler, injected by Fx.
type WaitTimeHandlerParams struct {
	fx.In

	WaitTimeUC usecase.WaitTimeUsecase
	Logger     *slog.Logger
}

// WaitTimeHandler holds dependencies for wait-time-related handlers
type WaitTimeHandler struct {
	waitTimeUC usecase.WaitTimeUsecase
	logger     *slog.Logger
}

// NewWaitTimeHandler is the constructor for WaitTimeHandler
func NewWaitTimeHandler(params WaitTimeHandlerParams) *WaitTimeHandler {
	return &WaitTimeHandler{
		waitTimeUC: params.WaitTimeUC,
		logger:     params.Logger,
	}
}

// SubmitWaitTimeRequest represents the request body for a wait report. The
// reporter's coordinates are re-validated server-side against the venue.
type SubmitWaitTimeRequest struct {
	VenueID   string  `json:"venue_id" validate:"required"`
	VenueName string  `json:"venue_name"`
	Minutes   int     `json:"minutes" validate:"min=0"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SubmitWaitTime handles submitting a wait report. Returns 403 TOO_FAR when
// the reporter is outside the venue's proximity radius.
func (h *WaitTimeHandler) SubmitWaitTime(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitWaitTimeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wait-time input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	waitTime, err := h.waitTimeUC.SubmitWaitTime(c.Request().Context(), &usecase.SubmitWaitTimeInput{
		VenueID:   req.VenueID,
		VenueName: req.VenueName,
		Minutes:   req.Minutes,
		Location: entity.Coordinate{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		ReportedBy: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, waitTime, "Wait time reported successfully")
}

// GetVenueWaitTimes handles retrieving recent wait reports for a venue
func (h *WaitTimeHandler) GetVenueWaitTimes(c echo.Context) error {
	venueID := c.Param("barId")
	if venueID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid bar ID")
	}

	waitTimes, err := h.waitTimeUC.GetRecentWaitTimes(c.Request().Context(), venueID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, waitTimes, "Wait times retrieved successfully")
}
