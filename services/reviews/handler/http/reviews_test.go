package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/middleware"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/reviews/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func testPassenger() *models.Principal {
	return &models.Principal{UserID: uuid.New(), Role: models.RolePassenger}
}

func TestCreateReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewUC := mocks.NewMockReviewUC(ctrl)
	handler := NewReviewsHandler(mockReviewUC)
	p := testPassenger()
	rideID := uuid.New()

	mockReviewUC.EXPECT().
		CreateReview(gomock.Any(), *p, models.CreateReviewRequest{RideID: rideID, Rating: 5}).
		Return(&models.Review{ID: uuid.New(), RideID: rideID, Rating: 5}, nil)

	c, rec := newContext(http.MethodPost, "/", `{"ride_id":"`+rideID.String()+`","rating":5}`, p)

	assert.NoError(t, handler.CreateReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateReview_AlreadyReviewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewUC := mocks.NewMockReviewUC(ctrl)
	handler := NewReviewsHandler(mockReviewUC)
	mockReviewUC.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperror.AlreadyReviewed())

	c, rec := newContext(http.MethodPost, "/", `{"ride_id":"`+uuid.NewString()+`","rating":5}`, testPassenger())

	assert.NoError(t, handler.CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already reviewed")
}

func TestCreateReview_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler := NewReviewsHandler(mocks.NewMockReviewUC(ctrl))

	c, rec := newContext(http.MethodPost, "/", `{}`, nil)

	assert.NoError(t, handler.CreateReview(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewUC := mocks.NewMockReviewUC(ctrl)
	handler := NewReviewsHandler(mockReviewUC)
	reviewID := uuid.New()
	rating := 2
	mockReviewUC.EXPECT().
		UpdateReview(gomock.Any(), gomock.Any(), reviewID, models.UpdateReviewRequest{Rating: &rating}).
		Return(&models.Review{ID: reviewID, Rating: 2}, nil)

	c, rec := newContext(http.MethodPut, "/", `{"rating":2}`, testPassenger())
	c.SetParamNames("id")
	c.SetParamValues(reviewID.String())

	assert.NoError(t, handler.UpdateReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteReview_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewUC := mocks.NewMockReviewUC(ctrl)
	handler := NewReviewsHandler(mockReviewUC)
	mockReviewUC.EXPECT().DeleteReview(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperror.Authorization("You can only modify your own reviews"))

	c, rec := newContext(http.MethodDelete, "/", "", testPassenger())
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	assert.NoError(t, handler.DeleteReview(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteReview_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler := NewReviewsHandler(mocks.NewMockReviewUC(ctrl))

	c, rec := newContext(http.MethodDelete, "/", "", testPassenger())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	assert.NoError(t, handler.DeleteReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDriverReviews_PassesPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewUC := mocks.NewMockReviewUC(ctrl)
	handler := NewReviewsHandler(mockReviewUC)
	driverID := uuid.New()
	mockReviewUC.EXPECT().DriverReviews(gomock.Any(), driverID, 3, 5).
		Return(&models.DriverReviews{
			Reviews: models.NewPage([]*models.Review{}, 3, 5, 0),
			Stats:   models.NewReviewStats(nil),
		}, nil)

	c, rec := newContext(http.MethodGet, "/?page=3&per_page=5", "", testPassenger())
	c.SetParamNames("id")
	c.SetParamValues(driverID.String())

	assert.NoError(t, handler.DriverReviews(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data models.DriverReviews `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Nil(t, env.Data.Stats.AverageRating)
	assert.Len(t, env.Data.Stats.RatingBreakdown, 5)
}

func TestUserReviews_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewUC := mocks.NewMockReviewUC(ctrl)
	handler := NewReviewsHandler(mockReviewUC)
	mockReviewUC.EXPECT().UserReviews(gomock.Any(), gomock.Any()).Return(nil, apperror.NotFound("User not found"))

	c, rec := newContext(http.MethodGet, "/", "", testPassenger())
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	assert.NoError(t, handler.UserReviews(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPendingReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviewUC := mocks.NewMockReviewUC(ctrl)
	handler := NewReviewsHandler(mockReviewUC)
	p := testPassenger()
	mockReviewUC.EXPECT().PendingReviews(gomock.Any(), *p).
		Return([]*models.PendingReview{{BookingID: uuid.New(), ReviewType: models.ReviewTypeDriver}}, nil)

	c, rec := newContext(http.MethodGet, "/", "", p)

	assert.NoError(t, handler.PendingReviews(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "driver_review")
}
