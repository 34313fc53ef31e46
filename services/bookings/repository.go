package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/hubber/services/bookings BookingRepo,BookingTx,IdempotencyStore

// BookingRepo defines the data access used by the booking workflow.
// Every mutation goes through RunInTx.
type BookingRepo interface {
	RunInTx(ctx context.Context, fn func(tx BookingTx) error) error

	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	GetBookingDetail(ctx context.Context, bookingID uuid.UUID) (*models.BookingDetail, error)
	ListPassengerBookings(ctx context.Context, passengerID uuid.UUID, filter models.BookingFilter) ([]*models.BookingDetail, int, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error)
	GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error)
}

// BookingTx is the set of row-locking operations available inside one transaction
type BookingTx interface {
	// Rides
	LockRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ReserveSeats(ctx context.Context, rideID uuid.UUID, seats int) error
	ReleaseSeats(ctx context.Context, rideID uuid.UUID, seats int) error
	UpdateRideStatus(ctx context.Context, ride *models.Ride) error
	IncrementDriverRides(ctx context.Context, driverID uuid.UUID) error

	// Bookings
	InsertBooking(ctx context.Context, booking *models.Booking) error
	LockBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	LockRideBookings(ctx context.Context, rideID uuid.UUID, statuses []models.BookingStatus) ([]*models.Booking, error)

	// Payments
	InsertPayment(ctx context.Context, payment *models.Payment) error
	LockPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error)
	LockPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
}

// IdempotencyStore records booking creation keys per principal
type IdempotencyStore interface {
	// Claim reserves key for principal. When the key already exists it returns
	// claimed=false and the stored value, either the in-flight marker or a booking id.
	Claim(ctx context.Context, principalID uuid.UUID, key string) (claimed bool, value string, err error)
	Complete(ctx context.Context, principalID uuid.UUID, key string, bookingID uuid.UUID) error
	Release(ctx context.Context, principalID uuid.UUID, key string) error
}
