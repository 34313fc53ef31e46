package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/hubber/services/reviews ReviewRepo,ReviewTx

// ReviewRepo defines the data access used by the review service.
// Writes that change a rating go through RunInTx.
type ReviewRepo interface {
	RunInTx(ctx context.Context, fn func(tx ReviewTx) error) error

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	FindCompletedBooking(ctx context.Context, rideID, passengerID uuid.UUID) (*models.Booking, error)
	ReviewExists(ctx context.Context, rideID, reviewerID, revieweeID uuid.UUID) (bool, error)
	GetReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error)

	ListReceived(ctx context.Context, revieweeID uuid.UUID, reviewType models.ReviewType, page, perPage int) ([]*models.Review, int, error)
	RatingCounts(ctx context.Context, revieweeID uuid.UUID, reviewType models.ReviewType) (map[int]int, error)
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*models.Review, error)
	ListByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]*models.Review, error)

	PassengerPendingReviews(ctx context.Context, passengerID uuid.UUID) ([]*models.PendingReview, error)
	DriverPendingReviews(ctx context.Context, driverID uuid.UUID) ([]*models.PendingReview, error)
}

// ReviewTx is the set of writes available inside one transaction
type ReviewTx interface {
	InsertReview(ctx context.Context, review *models.Review) error
	UpdateReview(ctx context.Context, review *models.Review) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	// RecomputeRating stores the rounded average rating of a user, or NULL when
	// no reviews remain, and returns the stored value
	RecomputeRating(ctx context.Context, userID uuid.UUID) (*float64, error)
}
