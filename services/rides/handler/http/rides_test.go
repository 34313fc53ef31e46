package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/middleware"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    int             `json:"code"`
}

func newContext(method, target, body string, principal *models.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(middleware.ContextKeyUserID, principal.UserID)
		c.Set(middleware.ContextKeyUserRole, principal.Role)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func testDriver() *models.Principal {
	return &models.Principal{UserID: uuid.New(), Role: models.RoleDriver}
}

func TestNewRidesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockRideUC, handler.rideUC)
}

func TestSearchRides_ParsesQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	mockRideUC.EXPECT().
		SearchRides(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.RideSearchFilter) (*models.Page[*models.Ride], error) {
			assert.Equal(t, "Jakarta", filter.Origin)
			assert.Equal(t, "premium", filter.VehicleType)
			require.NotNil(t, filter.DepartureDate)
			assert.True(t, date.Equal(*filter.DepartureDate))
			require.NotNil(t, filter.MinPrice)
			assert.Equal(t, 10.5, *filter.MinPrice)
			assert.Nil(t, filter.MaxPrice)
			require.NotNil(t, filter.NearLat)
			assert.Equal(t, -6.2, *filter.NearLat)
			assert.Equal(t, 2, filter.MinSeats)
			assert.Equal(t, "morning", filter.TimeOfDay)
			assert.Equal(t, "price_high", filter.SortBy)
			assert.Equal(t, 3, filter.Page)
			return models.NewPage([]*models.Ride{}, 3, 10, 0), nil
		})

	c, rec := newContext(http.MethodGet,
		"/rides/search?origin=Jakarta&vehicle_type=premium&departure_date=2026-03-12&min_price=10.5&near_lat=-6.2&near_lng=106.8&min_seats=2&time_of_day=morning&sort_by=price_high&page=3",
		"", nil)

	err := handler.SearchRides(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestSearchRides_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "bad date", query: "departure_date=12-03-2026"},
		{name: "bad price", query: "max_price=cheap"},
		{name: "bad latitude", query: "near_lat=north"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

			c, rec := newContext(http.MethodGet, "/rides?"+tt.query, "", nil)
			err := handler.SearchRides(c)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestSearchRides_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	mockRideUC.EXPECT().SearchRides(gomock.Any(), gomock.Any()).
		Return(nil, apperror.Validation("max_price must be greater than min_price"))

	c, rec := newContext(http.MethodGet, "/rides?min_price=20&max_price=10", "", nil)
	err := handler.SearchRides(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "max_price must be greater than min_price", decode(t, rec).Error)
}

func TestGetRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	rideID := uuid.New()
	mockRideUC.EXPECT().GetRide(gomock.Any(), rideID).
		Return(&models.RideDetail{Ride: models.Ride{ID: rideID}, Seats: models.SeatInfo{RideID: rideID, TotalSeats: 4}}, nil)

	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	err := handler.GetRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	var detail models.RideDetail
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &detail))
	assert.Equal(t, 4, detail.Seats.TotalSeats)
}

func TestGetRide_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, handler.GetRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeatInfo_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	mockRideUC.EXPECT().SeatInfo(gomock.Any(), gomock.Any()).Return(nil, apperror.NotFound("Ride not found"))

	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	assert.NoError(t, handler.SeatInfo(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	principal := testDriver()

	mockRideUC.EXPECT().
		CreateRide(gomock.Any(), *principal, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Principal, req models.CreateRideRequest) (*models.Ride, error) {
			assert.Equal(t, "Jakarta", req.Origin)
			assert.Equal(t, 3, req.AvailableSeats)
			return &models.Ride{ID: uuid.New(), DriverID: principal.UserID, TotalSeats: 3, AvailableSeats: 3}, nil
		})

	body := `{"origin":"Jakarta","destination":"Bandung","departure_time":"2026-03-11T07:00:00Z","available_seats":3,"price_per_seat":20}`
	c, rec := newContext(http.MethodPost, "/driver/rides", body, principal)

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRide_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

	c, rec := newContext(http.MethodPost, "/driver/rides", `{}`, nil)

	assert.NoError(t, handler.CreateRide(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateRide_BadBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

	c, rec := newContext(http.MethodPost, "/driver/rides", `{"available_seats":"three"}`, testDriver())

	assert.NoError(t, handler.CreateRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDriverRides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	principal := testDriver()

	mockRideUC.EXPECT().
		ListDriverRides(gomock.Any(), *principal, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Principal, filter models.DriverRideFilter) (*models.Page[*models.Ride], error) {
			assert.Equal(t, "completed", filter.Status)
			require.NotNil(t, filter.FromDate)
			assert.Nil(t, filter.ToDate)
			return models.NewPage([]*models.Ride{}, 1, 10, 0), nil
		})

	c, rec := newContext(http.MethodGet, "/driver/rides?status=completed&from_date=2026-03-01", "", principal)

	assert.NoError(t, handler.ListDriverRides(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDriverStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	principal := testDriver()

	mockRideUC.EXPECT().
		DriverStats(gomock.Any(), *principal).
		Return(&models.DriverStats{DriverID: principal.UserID, TotalRides: 4, CompletedRides: 3, UpcomingRides: 1, CompletionRate: 75, TotalEarnings: 120}, nil)

	c, rec := newContext(http.MethodGet, "/driver/stats", "", principal)

	require.NoError(t, handler.DriverStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.DriverStats
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &stats))
	assert.Equal(t, 3, stats.CompletedRides)
	assert.Equal(t, 1, stats.UpcomingRides)
	assert.Equal(t, 120.0, stats.TotalEarnings)
}

func TestDriverStats_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))
	c, rec := newContext(http.MethodGet, "/driver/stats", "", nil)

	require.NoError(t, handler.DriverStats(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateRideStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	principal := testDriver()
	rideID := uuid.New()

	mockRideUC.EXPECT().
		UpdateRideStatus(gomock.Any(), *principal, rideID, models.UpdateRideStatusRequest{Status: "cancelled", CancellationReason: "Flat tyre"}).
		Return(&models.Ride{ID: rideID, Status: models.RideStatusCancelled}, nil)

	c, rec := newContext(http.MethodPut, "/", `{"status":"cancelled","cancellation_reason":"Flat tyre"}`, principal)
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	assert.NoError(t, handler.UpdateRideStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRideStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "already completed", err: apperror.AlreadyCompleted(), wantStatus: http.StatusBadRequest},
		{name: "not owner", err: apperror.Authorization("You can only manage your own rides"), wantStatus: http.StatusForbidden},
		{name: "unknown status", err: apperror.Validation("Status must be in_progress, completed or cancelled"), wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRideUC := mocks.NewMockRideUC(ctrl)
			handler := NewRidesHandler(mockRideUC)
			mockRideUC.EXPECT().UpdateRideStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newContext(http.MethodPut, "/", `{"status":"completed"}`, testDriver())
			c.SetParamNames("id")
			c.SetParamValues(uuid.NewString())

			assert.NoError(t, handler.UpdateRideStatus(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestExportManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)
	principal := testDriver()
	rideID := uuid.New()

	mockRideUC.EXPECT().ExportManifest(gomock.Any(), *principal, rideID).
		Return([]byte("xlsx-bytes"), "manifest-"+rideID.String()+".xlsx", nil)

	c, rec := newContext(http.MethodGet, "/", "", principal)
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	assert.NoError(t, handler.ExportManifest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MIMESpreadsheet, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "manifest-"+rideID.String()+".xlsx")
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
}
