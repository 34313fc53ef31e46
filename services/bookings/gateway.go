package bookings

import (
	"context"

	"github.com/piresc/hubber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/hubber/services/bookings BookingGW

// BookingGW publishes booking, payment and ride lifecycle events
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
	PublishBookingCancelled(ctx context.Context, booking *models.Booking) error
	PublishPaymentCompleted(ctx context.Context, payment *models.Payment) error
	PublishPaymentRefunded(ctx context.Context, payment *models.Payment) error
	PublishRideCompleted(ctx context.Context, ride *models.Ride, bookings []*models.Booking) error
	PublishRideCancelled(ctx context.Context, ride *models.Ride, bookings []*models.Booking) error
}
