package gateway

import (
	"context"

	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/events"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/reviews"
)

type reviewGW struct {
	publisher events.Publisher
}

// NewReviewGW creates a new review event gateway
func NewReviewGW(publisher events.Publisher) reviews.ReviewGW {
	return &reviewGW{
		publisher: publisher,
	}
}

// PublishReviewCreated publishes review.created with the reviewee's new average
func (g *reviewGW) PublishReviewCreated(ctx context.Context, review *models.Review, rating *float64) error {
	return g.publisher.Publish(ctx, constants.SubjectReviewCreated, models.ReviewEvent{
		ReviewID:   review.ID.String(),
		RideID:     review.RideID.String(),
		ReviewerID: review.ReviewerID.String(),
		RevieweeID: review.RevieweeID.String(),
		ReviewType: string(review.ReviewType),
		Rating:     review.Rating,
		NewAverage: rating,
		OccurredAt: models.Now(),
	})
}
