package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/middleware"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/utils"
	"github.com/piresc/hubber/services/reviews"
)

// ReviewsHandler handles HTTP requests for reviews and ratings
type ReviewsHandler struct {
	reviewUC reviews.ReviewUC
}

// NewReviewsHandler creates a new reviews HTTP handler
func NewReviewsHandler(reviewUC reviews.ReviewUC) *ReviewsHandler {
	return &ReviewsHandler{
		reviewUC: reviewUC,
	}
}

// CreateReview handles POST /reviews
func (h *ReviewsHandler) CreateReview(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.CreateReview")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), principal, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Review created successfully", review)
}

// UpdateReview handles PUT /reviews/:id
func (h *ReviewsHandler) UpdateReview(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.UpdateReview")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	reviewID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	var req models.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), principal, reviewID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Review updated successfully", review)
}

// DeleteReview handles DELETE /reviews/:id
func (h *ReviewsHandler) DeleteReview(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.DeleteReview")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	reviewID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), principal, reviewID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Review deleted successfully", nil)
}

// PendingReviews handles GET /reviews/pending
func (h *ReviewsHandler) PendingReviews(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.PendingReviews")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	pending, err := h.reviewUC.PendingReviews(c.Request().Context(), principal)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending reviews retrieved successfully", pending)
}

// DriverReviews handles GET /reviews/drivers/:id
func (h *ReviewsHandler) DriverReviews(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.DriverReviews")

	driverID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	result, err := h.reviewUC.DriverReviews(c.Request().Context(), driverID,
		utils.QueryInt(c, "page", 1), utils.QueryInt(c, "per_page", models.DefaultPerPage))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver reviews retrieved successfully", result)
}

// UserReviews handles GET /reviews/users/:id
func (h *ReviewsHandler) UserReviews(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reviews.UserReviews")

	userID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	result, err := h.reviewUC.UserReviews(c.Request().Context(), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User reviews retrieved successfully", result)
}
