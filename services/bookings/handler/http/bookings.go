package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/middleware"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/utils"
	"github.com/piresc/hubber/services/bookings"
)

// HeaderIdempotencyKey scopes booking creation retries per principal
const HeaderIdempotencyKey = "Idempotency-Key"

// BookingsHandler handles HTTP requests for booking operations
type BookingsHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingsHandler creates a new booking HTTP handler
func NewBookingsHandler(bookingUC bookings.BookingUC) *BookingsHandler {
	return &BookingsHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingsHandler) CreateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.CreateBooking")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.IdempotencyKey = c.Request().Header.Get(HeaderIdempotencyKey)

	return h.create(c, txn, principal, req)
}

// ReserveSeats handles POST /rides/:id/reserve
func (h *BookingsHandler) ReserveSeats(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ReserveSeats")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var body models.ReserveSeatsRequest
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	req := models.CreateBookingRequest{
		RideID:          rideID,
		SeatsBooked:     body.Seats,
		SpecialRequests: body.SpecialRequests,
		IdempotencyKey:  c.Request().Header.Get(HeaderIdempotencyKey),
	}
	return h.create(c, txn, principal, req)
}

func (h *BookingsHandler) create(c echo.Context, txn *newrelic.Transaction, principal models.Principal, req models.CreateBookingRequest) error {
	result, err := h.bookingUC.CreateBooking(c.Request().Context(), principal, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	if result.Replayed {
		return utils.SuccessResponse(c, http.StatusOK, "Booking already created", result)
	}

	logger.Info("Booking created via API",
		logger.String("booking_id", result.Booking.ID.String()),
		logger.String("passenger_id", principal.UserID.String()))

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", result)
}

// GetBooking handles GET /bookings/:id
func (h *BookingsHandler) GetBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.GetBooking")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	detail, err := h.bookingUC.GetBooking(c.Request().Context(), principal, bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", detail)
}

// ListBookings handles GET /bookings
func (h *BookingsHandler) ListBookings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ListBookings")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := models.BookingFilter{
		Status:  strings.TrimSpace(c.QueryParam("status")),
		Page:    utils.QueryInt(c, "page", 1),
		PerPage: utils.QueryInt(c, "per_page", models.DefaultPerPage),
	}
	if raw := c.QueryParam("from_date"); raw != "" {
		from, err := models.ParseDate(raw)
		if err != nil {
			return utils.UnprocessableEntityResponse(c, "from_date must be YYYY-MM-DD")
		}
		filter.FromDate = &from
	}
	if raw := c.QueryParam("to_date"); raw != "" {
		to, err := models.ParseDate(raw)
		if err != nil {
			return utils.UnprocessableEntityResponse(c, "to_date must be YYYY-MM-DD")
		}
		filter.ToDate = &to
	}

	page, err := h.bookingUC.ListBookings(c.Request().Context(), principal, filter)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", page)
}

// UpdateBooking handles PUT /bookings/:id
func (h *BookingsHandler) UpdateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.UpdateBooking")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	booking, err := h.bookingUC.UpdateBooking(c.Request().Context(), principal, bookingID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking updated successfully", booking)
}

// CancelBooking handles PUT /bookings/:id/cancel
func (h *BookingsHandler) CancelBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.CancelBooking")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	// The body is optional
	var req models.CancelBookingRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request body")
		}
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), principal, bookingID, req.Reason)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", booking)
}

// Receipt handles GET /bookings/:id/receipt
func (h *BookingsHandler) Receipt(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.Receipt")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	pdf, filename, err := h.bookingUC.BookingReceipt(c.Request().Context(), principal, bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
