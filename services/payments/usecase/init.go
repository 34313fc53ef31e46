package usecase

import (
	"errors"
	"time"

	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/payments"
)

const defaultCurrency = "usd"

// PaymentUC implements the payment operations
type PaymentUC struct {
	cfg         *models.Config
	paymentRepo payments.PaymentRepo
	provider    payments.PaymentProvider
	lifecycle   payments.BookingLifecycle
	now         func() time.Time
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payments.PaymentRepo,
	provider payments.PaymentProvider,
	lifecycle payments.BookingLifecycle,
) (payments.PaymentUC, error) {
	if paymentRepo == nil {
		return nil, errors.New("payment repository is required")
	}
	if provider == nil {
		return nil, errors.New("payment provider is required")
	}
	if lifecycle == nil {
		return nil, errors.New("booking lifecycle is required")
	}
	return &PaymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		provider:    provider,
		lifecycle:   lifecycle,
		now:         models.Now,
	}, nil
}

func (uc *PaymentUC) currency() string {
	if uc.cfg != nil && uc.cfg.Booking.Currency != "" {
		return uc.cfg.Booking.Currency
	}
	return defaultCurrency
}

func fail(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.OperationFailed(err)
}
