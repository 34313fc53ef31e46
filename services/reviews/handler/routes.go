package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/services/reviews"
	httpHandler "github.com/piresc/hubber/services/reviews/handler/http"
)

// Handler combines all handlers for the reviews service
type Handler struct {
	reviewsHTTP *httpHandler.ReviewsHandler
}

// NewHandler creates a new combined handler
func NewHandler(reviewUC reviews.ReviewUC) *Handler {
	return &Handler{
		reviewsHTTP: httpHandler.NewReviewsHandler(reviewUC),
	}
}

// RegisterRoutes registers the review routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	reviewsGroup := api.Group("/reviews")
	reviewsGroup.POST("", h.reviewsHTTP.CreateReview)
	reviewsGroup.GET("/pending", h.reviewsHTTP.PendingReviews)
	reviewsGroup.GET("/drivers/:id", h.reviewsHTTP.DriverReviews)
	reviewsGroup.GET("/users/:id", h.reviewsHTTP.UserReviews)
	reviewsGroup.PUT("/:id", h.reviewsHTTP.UpdateReview)
	reviewsGroup.DELETE("/:id", h.reviewsHTTP.DeleteReview)
}
