package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

// PaymentRepo defines the data access for payment intents and lookups.
// Status transitions are owned by the booking workflow.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/hubber/services/payments PaymentRepo
type PaymentRepo interface {
	// GetPassengerBooking returns apperror.ErrNotFound when the booking does not belong to passengerID
	GetPassengerBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error)
	GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error)
	// SaveIntent stores the method and intent id of a still pending payment
	SaveIntent(ctx context.Context, payment *models.Payment) error
}
