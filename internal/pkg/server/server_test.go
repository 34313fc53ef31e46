package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger() *logger.ZapLogger {
	return logger.NewFromZap(zap.NewNop())
}

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()

	gs := NewGracefulServer(e, testLogger(), models.ServerConfig{Host: "127.0.0.1", Port: 9090, ReadTimeout: 5, WriteTimeout: 7})

	assert.Equal(t, "127.0.0.1:9090", gs.addr)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 7*time.Second, e.Server.WriteTimeout)
}

func TestGracefulServer_Run(t *testing.T) {
	// Arrange
	port := freePort(t)
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	gs := NewGracefulServer(e, testLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: 2})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + gs.addr + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGracefulServer_RunListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	gs := NewGracefulServer(e, testLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port})

	err = gs.Run(context.Background())

	assert.Error(t, err)
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("runs in reverse order", func(t *testing.T) {
		sm := NewShutdownManager(testLogger())
		var order []string
		for _, name := range []string{"postgres", "redis", "nats"} {
			name := name
			sm.Register(name, func(ctx context.Context) error {
				order = append(order, name)
				return nil
			})
		}

		err := sm.Shutdown(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []string{"nats", "redis", "postgres"}, order)
	})

	t.Run("continues after failure", func(t *testing.T) {
		sm := NewShutdownManager(testLogger())
		called := false
		sm.Register("postgres", func(ctx context.Context) error {
			called = true
			return nil
		})
		sm.Register("redis", func(ctx context.Context) error {
			return errors.New("close failed")
		})

		err := sm.Shutdown(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis: close failed")
		assert.True(t, called)
	})

	t.Run("empty manager", func(t *testing.T) {
		assert.NoError(t, NewShutdownManager(testLogger()).Shutdown(context.Background()))
	})
}

func TestShutdownManager_ConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager(testLogger())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Register("component", func(ctx context.Context) error { return nil })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, sm.Len())
}
