package gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/internal/utils"
	"github.com/piresc/hubber/services/payments"
)

// clientSecretLength is the number of hex characters after the secret prefix
const clientSecretLength = 24

// stubProvider issues local payment intents without calling a processor
type stubProvider struct{}

// NewStubProvider creates a payment provider that mints intents locally
func NewStubProvider() payments.PaymentProvider {
	return &stubProvider{}
}

// CreateIntent returns an intent of the form pi_<hex> with a dummy client secret
func (p *stubProvider) CreateIntent(ctx context.Context, amountCents int64, currency string, method models.PaymentMethod) (*models.PaymentIntent, error) {
	if amountCents < 0 {
		return nil, errors.New("intent amount must not be negative")
	}

	secret, err := utils.GenerateRandomHex(clientSecretLength)
	if err != nil {
		return nil, err
	}

	intent := &models.PaymentIntent{
		ID:           "pi_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		ClientSecret: "dummy_client_secret_" + secret,
		AmountCents:  amountCents,
		Currency:     strings.ToLower(currency),
	}

	logger.DebugCtx(ctx, "Payment intent created",
		logger.String("intent_id", intent.ID),
		logger.Int64("amount_cents", amountCents),
		logger.String("method", string(method)))
	return intent, nil
}
