package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
)

// CreatePaymentIntent opens a provider intent for the pending payment of the caller's booking
func (uc *PaymentUC) CreatePaymentIntent(ctx context.Context, principal models.Principal, req models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "PaymentUC.CreatePaymentIntent", func() (*models.PaymentIntentResponse, error) {
		if !models.IsValidPaymentMethod(req.PaymentMethod) {
			return nil, apperror.Validation("Payment method must be card or paypal")
		}
		method := models.PaymentMethod(req.PaymentMethod)

		booking, err := uc.paymentRepo.GetPassengerBooking(ctx, req.BookingID, principal.UserID)
		if err != nil {
			return nil, fail(err)
		}

		payment, err := uc.paymentRepo.GetPaymentByBooking(ctx, booking.ID)
		if err != nil {
			return nil, fail(err)
		}
		if payment.Status != models.PaymentStatusPending {
			return nil, apperror.InvalidPaymentState("Payment has already been processed")
		}

		intent, err := uc.provider.CreateIntent(ctx, payment.AmountInCents(), uc.currency(), method)
		if err != nil {
			return nil, apperror.OperationFailed(err)
		}

		if err := payment.AttachIntent(method, intent.ID); err != nil {
			return nil, apperror.InvalidPaymentState("Payment has already been processed")
		}
		payment.UpdatedAt = uc.now()
		if err := uc.paymentRepo.SaveIntent(ctx, payment); err != nil {
			return nil, fail(err)
		}

		logger.InfoCtx(ctx, "Payment intent attached",
			logger.String("payment_id", payment.ID.String()),
			logger.String("booking_id", booking.ID.String()),
			logger.String("method", string(method)))

		return &models.PaymentIntentResponse{
			ClientSecret: intent.ClientSecret,
			Payment:      payment,
		}, nil
	})
}

// ConfirmPayment completes the payment and confirms its booking
func (uc *PaymentUC) ConfirmPayment(ctx context.Context, principal models.Principal, req models.ConfirmPaymentRequest) (*models.Payment, error) {
	if req.BookingID == uuid.Nil {
		return nil, apperror.Validation("Booking ID is required")
	}
	return uc.lifecycle.ConfirmPayment(ctx, principal, req.BookingID, req.PaymentIntentID)
}

// RefundPayment refunds a completed payment and cancels its booking
func (uc *PaymentUC) RefundPayment(ctx context.Context, principal models.Principal, paymentID uuid.UUID) (*models.Payment, error) {
	if paymentID == uuid.Nil {
		return nil, apperror.Validation("Payment ID is required")
	}
	return uc.lifecycle.RefundPayment(ctx, principal, paymentID)
}

// GetPayment returns a payment to the passenger who owns its booking
func (uc *PaymentUC) GetPayment(ctx context.Context, principal models.Principal, paymentID uuid.UUID) (*models.Payment, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "PaymentUC.GetPayment", func() (*models.Payment, error) {
		payment, err := uc.paymentRepo.GetPayment(ctx, paymentID)
		if err != nil {
			return nil, fail(err)
		}
		booking, err := uc.paymentRepo.GetBooking(ctx, payment.BookingID)
		if err != nil {
			return nil, fail(err)
		}
		if booking.PassengerID != principal.UserID && !principal.IsAdmin() {
			return nil, apperror.Authorization("You can only view your own payments")
		}
		return payment, nil
	})
}
