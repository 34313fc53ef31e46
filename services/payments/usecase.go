package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

// PaymentUC defines the payment operations exposed over HTTP
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/hubber/services/payments PaymentUC,BookingLifecycle
type PaymentUC interface {
	CreatePaymentIntent(ctx context.Context, principal models.Principal, req models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error)
	ConfirmPayment(ctx context.Context, principal models.Principal, req models.ConfirmPaymentRequest) (*models.Payment, error)
	RefundPayment(ctx context.Context, principal models.Principal, paymentID uuid.UUID) (*models.Payment, error)
	GetPayment(ctx context.Context, principal models.Principal, paymentID uuid.UUID) (*models.Payment, error)
}

// BookingLifecycle settles payments together with their booking and seats.
// The booking workflow implements it.
type BookingLifecycle interface {
	ConfirmPayment(ctx context.Context, principal models.Principal, bookingID uuid.UUID, paymentIntentID string) (*models.Payment, error)
	RefundPayment(ctx context.Context, principal models.Principal, paymentID uuid.UUID) (*models.Payment, error)
}
