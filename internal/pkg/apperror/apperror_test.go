package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("bad"), http.StatusUnprocessableEntity},
		{"authorization", Authorization("no"), http.StatusForbidden},
		{"unauthenticated", Unauthenticated("who"), http.StatusUnauthorized},
		{"conflict", InsufficientSeats(), http.StatusBadRequest},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"duplicate", InProgress("busy"), http.StatusConflict},
		{"operation failed", OperationFailed(errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestIs_MatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create booking: %w", InsufficientSeats())

	assert.True(t, errors.Is(err, ErrInsufficientSeats))
	assert.False(t, errors.Is(err, ErrRideUnavailable))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestIs_KindOnlySentinel(t *testing.T) {
	assert.True(t, errors.Is(Validation("seats must be at least 1"), ErrValidation))
	assert.False(t, errors.Is(Validation("x"), ErrAuthorization))
}

func TestFrom(t *testing.T) {
	t.Run("typed error passes through", func(t *testing.T) {
		src := NotCancellable()
		got := From(fmt.Errorf("wrapped: %w", src))
		assert.Same(t, src, got)
	})

	t.Run("unknown error becomes operation failed", func(t *testing.T) {
		cause := errors.New("connection reset")
		got := From(cause)
		assert.Equal(t, KindOperationFailed, got.Kind)
		assert.Equal(t, OperationFailedMessage, got.Message)
		assert.ErrorIs(t, got, cause)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, From(nil))
	})
}
