package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/database"
)

// IdempotencyRepo stores booking idempotency keys in Redis
type IdempotencyRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewIdempotencyRepository creates a new Redis-backed idempotency store
func NewIdempotencyRepository(redisClient *database.RedisClient, ttl time.Duration) *IdempotencyRepo {
	return &IdempotencyRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func idempotencyKey(principalID uuid.UUID, key string) string {
	return fmt.Sprintf(constants.KeyBookingIdempotency, principalID.String(), key)
}

// Claim marks the key as in flight unless it already exists
func (r *IdempotencyRepo) Claim(ctx context.Context, principalID uuid.UUID, key string) (bool, string, error) {
	redisKey := idempotencyKey(principalID, key)

	// a key can expire between SETNX and GET, so try twice
	for attempt := 0; attempt < 2; attempt++ {
		claimed, err := r.redisClient.SetNX(ctx, redisKey, constants.IdempotencyInFlight, r.ttl)
		if err != nil {
			return false, "", fmt.Errorf("failed to claim idempotency key: %w", err)
		}
		if claimed {
			return true, "", nil
		}

		value, err := r.redisClient.Get(ctx, redisKey)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return false, "", fmt.Errorf("failed to read idempotency key: %w", err)
		}
		return false, value, nil
	}
	return false, constants.IdempotencyInFlight, nil
}

// Complete binds the key to the booking it created
func (r *IdempotencyRepo) Complete(ctx context.Context, principalID uuid.UUID, key string, bookingID uuid.UUID) error {
	if err := r.redisClient.Set(ctx, idempotencyKey(principalID, key), bookingID.String(), r.ttl); err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

// Release drops the key so the request can be retried
func (r *IdempotencyRepo) Release(ctx context.Context, principalID uuid.UUID, key string) error {
	if err := r.redisClient.Delete(ctx, idempotencyKey(principalID, key)); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
