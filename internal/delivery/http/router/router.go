// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"aroundtheblock/internal/delivery/http/middleware"
	"aroundtheblock/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckInHandler  *handler.CheckInHandler
	VenueHandler    *handler.VenueHandler
	WaitTimeHandler *handler.WaitTimeHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	checkInHandler  *handler.CheckInHandler
	venueHandler    *handler.VenueHandler
	waitTimeHandler *handler.WaitTimeHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkInHandler:  params.CheckInHandler,
		venueHandler:    params.VenueHandler,
		waitTimeHandler: params.WaitTimeHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Bar directory routes; reads are public so the map renders pre-login
	barGroup := api.Group("/bars")
	{
		barGroup.GET("/nearby", r.venueHandler.GetNearbyVenues)
		barGroup.GET("/:id", r.venueHandler.GetVenue)
		barGroup.GET("/:id/qr", r.venueHandler.GetVenueQR)
	}
	api.POST("/bars", r.venueHandler.UpsertVenue, r.authMiddleware.Authenticate)

	// Check-in routes require authentication
	checkInGroup := api.Group("/checkins")
	checkInGroup.Use(r.authMiddleware.Authenticate)
	{
		checkInGroup.POST("", r.checkInHandler.CreateCheckIn)
		checkInGroup.POST("/:id/checkout", r.checkInHandler.EndCheckIn)
		checkInGroup.GET("/user/:userId", r.checkInHandler.GetUserCheckIns)
		checkInGroup.GET("/active", r.checkInHandler.GetActiveCheckIns)
		checkInGroup.GET("/bar/:barId", r.checkInHandler.GetVenueCheckIns)
	}

	// Wait-time routes; submission is gated by proximity server-side
	barTimeGroup := api.Group("/bartime")
	barTimeGroup.Use(r.authMiddleware.Authenticate)
	{
		barTimeGroup.POST("", r.waitTimeHandler.SubmitWaitTime)
		barTimeGroup.GET("/bar/:barId", r.waitTimeHandler.GetVenueWaitTimes)
	}

	// Device registration for push notifications
	api.POST("/devices", r.deviceHandler.RegisterDevice, r.authMiddleware.Authenticate)
}
