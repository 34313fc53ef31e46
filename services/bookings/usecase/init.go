package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/bookings"
)

// BookingUC implements the booking workflow
type BookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	idempotency bookings.IdempotencyStore
	bookingGW   bookings.BookingGW
	now         func() time.Time
}

// NewBookingUC creates a new booking use case. The idempotency store is optional.
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	idempotency bookings.IdempotencyStore,
	bookingGW bookings.BookingGW,
) (bookings.BookingUC, error) {
	if bookingRepo == nil {
		return nil, errors.New("booking repository is required")
	}
	if bookingGW == nil {
		return nil, errors.New("booking gateway is required")
	}
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		idempotency: idempotency,
		bookingGW:   bookingGW,
		now:         models.Now,
	}, nil
}

func (uc *BookingUC) cancellationWindow() time.Duration {
	if uc.cfg != nil && uc.cfg.Booking.CancellationWindow > 0 {
		return uc.cfg.Booking.CancellationWindow
	}
	return models.DefaultCancellationWindow
}

// fail keeps typed errors and wraps anything else as an operation failure
func fail(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.OperationFailed(err)
}

// seatError maps the seat accounting sentinels to their domain errors
func seatError(err error) error {
	switch {
	case errors.Is(err, models.ErrSeatsExceedAvailable):
		return apperror.InsufficientSeats()
	case errors.Is(err, models.ErrInvalidSeatCount):
		return apperror.Validation("Seats must be at least 1")
	}
	return err
}

// publish sends an event after commit. Failures are logged and never surface to the caller.
func publish(ctx context.Context, event string, fn func() error) {
	if err := fn(); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			logger.String("event", event),
			logger.ErrorField(err))
	}
}
