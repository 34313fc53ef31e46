package nats

import (
	"os"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1")

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_PublishSubscribe(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, client.IsConnected())

	msgCh := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe("booking.created", func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.Publish("booking.created", []byte(`{"booking_id":"b-1"}`)))
	require.NoError(t, client.Flush())

	select {
	case msg := <-msgCh:
		assert.JSONEq(t, `{"booking_id":"b-1"}`, string(msg.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestClient_CloseDisconnects(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err)

	client.Close()

	assert.False(t, client.IsConnected())
}
