package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/services/rides"
	httpHandler "github.com/piresc/hubber/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
	}
}

// RegisterRoutes registers the public catalog routes on public and the
// driver-only routes on driver
func (h *Handler) RegisterRoutes(public *echo.Group, driver *echo.Group) {
	ridesGroup := public.Group("/rides")
	ridesGroup.GET("", h.ridesHTTP.SearchRides)
	ridesGroup.GET("/search", h.ridesHTTP.SearchRides)
	ridesGroup.GET("/:id", h.ridesHTTP.GetRide)
	ridesGroup.GET("/:id/seats", h.ridesHTTP.SeatInfo)

	driverRides := driver.Group("/rides")
	driverRides.POST("", h.ridesHTTP.CreateRide)
	driverRides.GET("", h.ridesHTTP.ListDriverRides)
	driverRides.PUT("/:id/status", h.ridesHTTP.UpdateRideStatus)
	driverRides.GET("/:id/manifest", h.ridesHTTP.ExportManifest)

	driver.GET("/stats", h.ridesHTTP.DriverStats)
}
