package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/rides"
)

const maxRidesPerPage = 50

// RideUC implements the ride catalog
type RideUC struct {
	cfg       *models.Config
	rideRepo  rides.RideRepo
	rideGW    rides.RideGW
	lifecycle rides.RideLifecycle
	now       func() time.Time
}

// NewRideUC creates a new ride use case. lifecycle handles the completed and
// cancelled transitions.
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
	lifecycle rides.RideLifecycle,
) (rides.RideUC, error) {
	if rideRepo == nil {
		return nil, errors.New("ride repository is required")
	}
	if rideGW == nil {
		return nil, errors.New("ride gateway is required")
	}
	if lifecycle == nil {
		return nil, errors.New("ride lifecycle is required")
	}
	return &RideUC{
		cfg:       cfg,
		rideRepo:  rideRepo,
		rideGW:    rideGW,
		lifecycle: lifecycle,
		now:       models.Now,
	}, nil
}

func fail(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.OperationFailed(err)
}

func publish(ctx context.Context, event string, fn func() error) {
	if err := fn(); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			logger.String("event", event),
			logger.ErrorField(err))
	}
}
