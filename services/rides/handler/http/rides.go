package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/middleware"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/utils"
	"github.com/piresc/hubber/services/rides"
)

// MIMESpreadsheet is the content type of XLSX downloads
const MIMESpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RidesHandler handles HTTP requests for the ride catalog
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new rides HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// SearchRides handles GET /rides and GET /rides/search
func (h *RidesHandler) SearchRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.SearchRides")

	filter := models.RideSearchFilter{
		Origin:      c.QueryParam("origin"),
		Destination: c.QueryParam("destination"),
		VehicleType: strings.TrimSpace(c.QueryParam("vehicle_type")),
		MinSeats:    utils.QueryInt(c, "min_seats", 0),
		TimeOfDay:   strings.TrimSpace(c.QueryParam("time_of_day")),
		SortBy:      strings.TrimSpace(c.QueryParam("sort_by")),
		Page:        utils.QueryInt(c, "page", 1),
		PerPage:     utils.QueryInt(c, "per_page", models.DefaultPerPage),
	}

	if raw := c.QueryParam("departure_date"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return utils.UnprocessableEntityResponse(c, "departure_date must be YYYY-MM-DD")
		}
		filter.DepartureDate = &date
	}

	var err error
	if filter.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return utils.UnprocessableEntityResponse(c, "min_price must be a number")
	}
	if filter.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return utils.UnprocessableEntityResponse(c, "max_price must be a number")
	}
	if filter.NearLat, err = queryFloat(c, "near_lat"); err != nil {
		return utils.UnprocessableEntityResponse(c, "near_lat must be a number")
	}
	if filter.NearLng, err = queryFloat(c, "near_lng"); err != nil {
		return utils.UnprocessableEntityResponse(c, "near_lng must be a number")
	}

	page, err := h.rideUC.SearchRides(c.Request().Context(), filter)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", page)
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetRide handles GET /rides/:id
func (h *RidesHandler) GetRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.GetRide")

	rideID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// SeatInfo handles GET /rides/:id/seats
func (h *RidesHandler) SeatInfo(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.SeatInfo")

	rideID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	seats, err := h.rideUC.SeatInfo(c.Request().Context(), rideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Seat information retrieved successfully", seats)
}

// CreateRide handles POST /driver/rides
func (h *RidesHandler) CreateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CreateRide")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), principal, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("Ride published via API",
		logger.String("ride_id", ride.ID.String()),
		logger.String("driver_id", principal.UserID.String()))

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// ListDriverRides handles GET /driver/rides
func (h *RidesHandler) ListDriverRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListDriverRides")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := models.DriverRideFilter{
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

	page, err := h.rideUC.ListDriverRides(c.Request().Context(), principal, filter)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", page)
}

// DriverStats handles GET /driver/stats
func (h *RidesHandler) DriverStats(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.DriverStats")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.rideUC.DriverStats(c.Request().Context(), principal)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver statistics retrieved successfully", stats)
}

// UpdateRideStatus handles PUT /driver/rides/:id/status
func (h *RidesHandler) UpdateRideStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.UpdateRideStatus")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.UpdateRideStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.UpdateRideStatus(c.Request().Context(), principal, rideID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated successfully", ride)
}

// ExportManifest handles GET /driver/rides/:id/manifest
func (h *RidesHandler) ExportManifest(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ExportManifest")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	data, filename, err := h.rideUC.ExportManifest(c.Request().Context(), principal, rideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, MIMESpreadsheet, data)
}
