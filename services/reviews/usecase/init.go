package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/reviews"
)

const maxReviewsPerPage = 50

// ReviewUC implements the review and rating operations
type ReviewUC struct {
	cfg        *models.Config
	reviewRepo reviews.ReviewRepo
	reviewGW   reviews.ReviewGW
	now        func() time.Time
}

// NewReviewUC creates a new review use case
func NewReviewUC(cfg *models.Config, reviewRepo reviews.ReviewRepo, reviewGW reviews.ReviewGW) (reviews.ReviewUC, error) {
	if reviewRepo == nil {
		return nil, errors.New("review repository is required")
	}
	if reviewGW == nil {
		return nil, errors.New("review gateway is required")
	}
	return &ReviewUC{
		cfg:        cfg,
		reviewRepo: reviewRepo,
		reviewGW:   reviewGW,
		now:        models.Now,
	}, nil
}

func fail(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.OperationFailed(err)
}

func publish(ctx context.Context, subject string, fn func() error) {
	if err := fn(); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			logger.String("subject", subject),
			logger.ErrorField(err))
	}
}
