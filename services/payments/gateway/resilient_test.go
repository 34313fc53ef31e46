package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/circuitbreaker"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/internal/pkg/retry"
	"github.com/piresc/hubber/services/payments/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResilientFixture(t *testing.T, threshold uint32) (*mocks.MockPaymentProvider, *resilientProvider) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockPaymentProvider(ctrl)

	breakerCfg := circuitbreaker.DefaultConfig("test-provider")
	breakerCfg.FailureThreshold = threshold
	retryCfg := retry.DefaultConfig("test-provider")
	retryCfg.BaseDelay = time.Millisecond
	retryCfg.MaxDelay = time.Millisecond

	return next, NewResilientProvider(next, breakerCfg, retryCfg).(*resilientProvider)
}

func TestResilientProvider_RetriesTransientFailure(t *testing.T) {
	next, provider := newResilientFixture(t, 5)
	want := &models.PaymentIntent{ID: "pi_123", AmountCents: 500, Currency: "usd"}

	gomock.InOrder(
		next.EXPECT().CreateIntent(gomock.Any(), int64(500), "usd", models.PaymentMethodCard).
			Return(nil, errors.New("connection reset")),
		next.EXPECT().CreateIntent(gomock.Any(), int64(500), "usd", models.PaymentMethodCard).
			Return(want, nil),
	)

	intent, err := provider.CreateIntent(context.Background(), 500, "usd", models.PaymentMethodCard)

	require.NoError(t, err)
	assert.Equal(t, want, intent)
}

func TestResilientProvider_CallerErrorNotRetried(t *testing.T) {
	next, provider := newResilientFixture(t, 1)

	next.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.Validation("Unsupported currency")).Times(1)

	_, err := provider.CreateIntent(context.Background(), 500, "xyz", models.PaymentMethodCard)

	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, circuitbreaker.StateClosed, provider.breaker.State())
}

func TestResilientProvider_OpenBreakerStopsCalls(t *testing.T) {
	next, provider := newResilientFixture(t, 2)

	next.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("processor unavailable")).Times(2)

	_, err := provider.CreateIntent(context.Background(), 500, "usd", models.PaymentMethodCard)
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, circuitbreaker.StateOpen, provider.breaker.State())

	_, err = provider.CreateIntent(context.Background(), 500, "usd", models.PaymentMethodCard)
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
}

func TestNewDefaultResilientProvider_WrapsStub(t *testing.T) {
	provider := NewDefaultResilientProvider(NewStubProvider())

	intent, err := provider.CreateIntent(context.Background(), 1200, "EUR", models.PaymentMethodPaypal)

	require.NoError(t, err)
	assert.Equal(t, "eur", intent.Currency)
}
