package payments

import (
	"context"

	"github.com/piresc/hubber/internal/pkg/models"
)

// PaymentProvider creates payment intents with the external processor
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/hubber/services/payments PaymentProvider
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, method models.PaymentMethod) (*models.PaymentIntent, error)
}
