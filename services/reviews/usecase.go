package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/hubber/services/reviews ReviewUC

// ReviewUC defines the review and rating operations
type ReviewUC interface {
	CreateReview(ctx context.Context, principal models.Principal, req models.CreateReviewRequest) (*models.Review, error)
	UpdateReview(ctx context.Context, principal models.Principal, reviewID uuid.UUID, req models.UpdateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, principal models.Principal, reviewID uuid.UUID) error
	DriverReviews(ctx context.Context, driverID uuid.UUID, page, perPage int) (*models.DriverReviews, error)
	UserReviews(ctx context.Context, userID uuid.UUID) (*models.UserReviews, error)
	PendingReviews(ctx context.Context, principal models.Principal) ([]*models.PendingReview, error)
}
