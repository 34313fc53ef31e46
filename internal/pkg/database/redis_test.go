package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, mr
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Success(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: atoiPort(t, mr.Port())})

	require.NoError(t, err)
	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("booking:idem:u1:k1", "in_flight", time.Hour).SetVal("OK")

	err := client.Set(context.Background(), "booking:idem:u1:k1", "in_flight", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("key", "value", time.Hour).SetErr(errors.New("READONLY"))

	err := client.Set(context.Background(), "key", "value", time.Hour)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetNX(t *testing.T) {
	tests := []struct {
		name       string
		mockResult bool
		mockError  error
		wantOK     bool
		wantErr    bool
	}{
		{name: "claimed", mockResult: true, wantOK: true},
		{name: "already exists", mockResult: false, wantOK: false},
		{name: "redis error", mockError: errors.New("connection refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}

			expect := mock.ExpectSetNX("booking:idem:u1:k1", "in_flight", 24*time.Hour)
			if tt.mockError != nil {
				expect.SetErr(tt.mockError)
			} else {
				expect.SetVal(tt.mockResult)
			}

			ok, err := client.SetNX(context.Background(), "booking:idem:u1:k1", "in_flight", 24*time.Hour)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOK, ok)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_GetAndDelete(t *testing.T) {
	client, mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("greeting", "hello"))

	val, err := client.Get(ctx, "greeting")
	assert.NoError(t, err)
	assert.Equal(t, "hello", val)

	assert.NoError(t, client.Delete(ctx, "greeting"))

	_, err = client.Get(ctx, "greeting")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_IncrWithExpiry(t *testing.T) {
	client, mr := setupMiniredis(t)
	ctx := context.Background()
	key := "rate:limit:bookings:u1"

	for i := int64(1); i <= 3; i++ {
		count, err := client.IncrWithExpiry(ctx, key, time.Minute)
		assert.NoError(t, err)
		assert.Equal(t, i, count)
	}

	ttl, err := client.TTL(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(time.Minute + time.Second)

	count, err := client.IncrWithExpiry(ctx, key, time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
