package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/services/bookings"
	httpHandler "github.com/piresc/hubber/services/bookings/handler/http"
)

// Handler combines all handlers for the bookings service
type Handler struct {
	bookingsHTTP *httpHandler.BookingsHandler
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC bookings.BookingUC) *Handler {
	return &Handler{
		bookingsHTTP: httpHandler.NewBookingsHandler(bookingUC),
	}
}

// RegisterRoutes registers the authenticated booking routes on api. Creation
// routes additionally pass through createLimiter.
func (h *Handler) RegisterRoutes(api *echo.Group, createLimiter echo.MiddlewareFunc) {
	if createLimiter == nil {
		createLimiter = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	api.POST("/rides/:id/reserve", h.bookingsHTTP.ReserveSeats, createLimiter)

	bookingsGroup := api.Group("/bookings")
	bookingsGroup.POST("", h.bookingsHTTP.CreateBooking, createLimiter)
	bookingsGroup.GET("", h.bookingsHTTP.ListBookings)
	bookingsGroup.GET("/:id", h.bookingsHTTP.GetBooking)
	bookingsGroup.PUT("/:id", h.bookingsHTTP.UpdateBooking)
	bookingsGroup.PUT("/:id/cancel", h.bookingsHTTP.CancelBooking)
	bookingsGroup.GET("/:id/receipt", h.bookingsHTTP.Receipt)
}
