package gateway

import (
	"context"
	"errors"

	"github.com/piresc/hubber/internal/pkg/circuitbreaker"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/internal/pkg/retry"
	"github.com/piresc/hubber/services/payments"
)

// resilientProvider retries transient processor failures and stops calling a
// processor that keeps failing
type resilientProvider struct {
	next    payments.PaymentProvider
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
}

// NewResilientProvider wraps next with a circuit breaker consulted on every attempt
func NewResilientProvider(next payments.PaymentProvider, breakerCfg circuitbreaker.Config, retryCfg retry.Config) payments.PaymentProvider {
	breakerCfg.IsFailure = isProviderFailure
	retryCfg.Retryable = func(err error) bool {
		return isProviderFailure(err) &&
			!errors.Is(err, circuitbreaker.ErrOpen) &&
			!errors.Is(err, circuitbreaker.ErrTooManyRequests)
	}
	return &resilientProvider{
		next:    next,
		breaker: circuitbreaker.New(breakerCfg),
		retrier: retry.New(retryCfg),
	}
}

// NewDefaultResilientProvider wraps next with the default breaker and backoff
func NewDefaultResilientProvider(next payments.PaymentProvider) payments.PaymentProvider {
	return NewResilientProvider(next,
		circuitbreaker.DefaultConfig("payment-provider"),
		retry.DefaultConfig("payment-provider.create-intent"))
}

func (p *resilientProvider) CreateIntent(ctx context.Context, amountCents int64, currency string, method models.PaymentMethod) (*models.PaymentIntent, error) {
	var intent *models.PaymentIntent
	err := p.retrier.Execute(ctx, func(ctx context.Context) error {
		return p.breaker.Execute(ctx, func(ctx context.Context) error {
			var err error
			intent, err = p.next.CreateIntent(ctx, amountCents, currency, method)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return intent, nil
}

// isProviderFailure reports whether err points at the processor rather than the caller
func isProviderFailure(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var appErr interface{ StatusCode() int }
	if errors.As(err, &appErr) {
		return appErr.StatusCode() >= 500
	}
	return true
}
