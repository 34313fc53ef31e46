package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedMessage struct {
	subject string
	data    []byte
}

type fakeNATS struct {
	messages []recordedMessage
	err      error
}

func (f *fakeNATS) Publish(subject string, data []byte) error {
	f.messages = append(f.messages, recordedMessage{subject, data})
	return f.err
}

type fakeAMQP struct {
	messages []recordedMessage
}

func (f *fakeAMQP) Publish(ctx context.Context, routingKey string, body []byte) error {
	f.messages = append(f.messages, recordedMessage{routingKey, body})
	return nil
}

func TestNATSPublisher_EncodesJSON(t *testing.T) {
	conn := &fakeNATS{}
	pub := NewNATSPublisher(conn)

	err := pub.Publish(context.Background(), constants.SubjectBookingCreated, models.BookingEvent{
		BookingID:   "b-1",
		SeatsBooked: 2,
	})

	require.NoError(t, err)
	require.Len(t, conn.messages, 1)
	assert.Equal(t, constants.SubjectBookingCreated, conn.messages[0].subject)

	var got models.BookingEvent
	require.NoError(t, json.Unmarshal(conn.messages[0].data, &got))
	assert.Equal(t, "b-1", got.BookingID)
	assert.Equal(t, 2, got.SeatsBooked)
}

func TestNATSPublisher_PropagatesTransportError(t *testing.T) {
	pub := NewNATSPublisher(&fakeNATS{err: errors.New("nats: connection closed")})

	err := pub.Publish(context.Background(), constants.SubjectRideCreated, map[string]string{"ride_id": "r-1"})

	assert.Error(t, err)
}

func TestNATSPublisher_MarshalError(t *testing.T) {
	pub := NewNATSPublisher(&fakeNATS{})

	err := pub.Publish(context.Background(), constants.SubjectRideCreated, make(chan int))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal ride.created event")
}

func TestAMQPPublisher_UsesSubjectAsRoutingKey(t *testing.T) {
	conn := &fakeAMQP{}
	pub := NewAMQPPublisher(conn)

	err := pub.Publish(context.Background(), constants.SubjectPaymentRefunded, models.PaymentEvent{PaymentID: "p-1"})

	require.NoError(t, err)
	require.Len(t, conn.messages, 1)
	assert.Equal(t, constants.SubjectPaymentRefunded, conn.messages[0].subject)
}

func TestNewPublisher(t *testing.T) {
	natsConn := &fakeNATS{}
	amqpConn := &fakeAMQP{}

	tests := []struct {
		name    string
		driver  string
		nats    SubjectPublisher
		amqp    RoutingPublisher
		want    interface{}
		wantErr bool
	}{
		{name: "default is nats", driver: "", nats: natsConn, want: &NATSPublisher{}},
		{name: "nats", driver: constants.EventsDriverNATS, nats: natsConn, want: &NATSPublisher{}},
		{name: "amqp", driver: constants.EventsDriverAMQP, amqp: amqpConn, want: &AMQPPublisher{}},
		{name: "none", driver: constants.EventsDriverNone, want: NoopPublisher{}},
		{name: "nats without connection", driver: constants.EventsDriverNATS, wantErr: true},
		{name: "amqp without connection", driver: constants.EventsDriverAMQP, wantErr: true},
		{name: "unknown driver", driver: "kafka", nats: natsConn, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &models.Config{Events: models.EventsConfig{Driver: tt.driver}}

			pub, err := NewPublisher(cfg, tt.nats, tt.amqp)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, pub)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, pub)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), constants.SubjectRideCancelled, nil))
}
