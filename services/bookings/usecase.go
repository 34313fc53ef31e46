package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/hubber/services/bookings BookingUC

// BookingUC defines the booking workflow
type BookingUC interface {
	CreateBooking(ctx context.Context, principal models.Principal, req models.CreateBookingRequest) (*models.BookingResult, error)
	UpdateBooking(ctx context.Context, principal models.Principal, bookingID uuid.UUID, req models.UpdateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, principal models.Principal, bookingID uuid.UUID, reason string) (*models.Booking, error)
	GetBooking(ctx context.Context, principal models.Principal, bookingID uuid.UUID) (*models.BookingDetail, error)
	ListBookings(ctx context.Context, principal models.Principal, filter models.BookingFilter) (*models.Page[*models.BookingDetail], error)
	BookingReceipt(ctx context.Context, principal models.Principal, bookingID uuid.UUID) ([]byte, string, error)

	ConfirmPayment(ctx context.Context, principal models.Principal, bookingID uuid.UUID, paymentIntentID string) (*models.Payment, error)
	RefundPayment(ctx context.Context, principal models.Principal, paymentID uuid.UUID) (*models.Payment, error)

	CompleteRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, reason string) (*models.Ride, error)
}
