package reviews

import (
	"context"

	"github.com/piresc/hubber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/hubber/services/reviews ReviewGW

// ReviewGW publishes review events
type ReviewGW interface {
	PublishReviewCreated(ctx context.Context, review *models.Review, rating *float64) error
}
