// Package events publishes domain events over the configured transport.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
)

// Publisher publishes a JSON encoded payload under a subject
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// SubjectPublisher is the raw byte transport of a NATS client
type SubjectPublisher interface {
	Publish(subject string, data []byte) error
}

// RoutingPublisher is the raw byte transport of an AMQP publisher
type RoutingPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// NATSPublisher publishes events as NATS subjects
type NATSPublisher struct {
	conn SubjectPublisher
}

func NewNATSPublisher(conn SubjectPublisher) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}

	defer nrpkg.StartMessageSegment(ctx, "NATS", subject).End()
	return p.conn.Publish(subject, data)
}

// AMQPPublisher publishes events with the subject as routing key
type AMQPPublisher struct {
	conn RoutingPublisher
}

func NewAMQPPublisher(conn RoutingPublisher) *AMQPPublisher {
	return &AMQPPublisher{conn: conn}
}

func (p *AMQPPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}

	defer nrpkg.StartMessageSegment(ctx, "RabbitMQ", subject).End()
	return p.conn.Publish(ctx, subject, data)
}

// NoopPublisher discards events
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, subject string, payload any) error {
	logger.DebugCtx(ctx, "Event dropped, no transport configured", logger.String("subject", subject))
	return nil
}

// NewPublisher picks the transport named by cfg.Events.Driver.
// A missing client for the chosen driver is a configuration error.
func NewPublisher(cfg *models.Config, natsConn SubjectPublisher, amqpConn RoutingPublisher) (Publisher, error) {
	switch cfg.Events.Driver {
	case "", constants.EventsDriverNATS:
		if natsConn == nil {
			return nil, fmt.Errorf("events driver nats requires a NATS connection")
		}
		return NewNATSPublisher(natsConn), nil
	case constants.EventsDriverAMQP:
		if amqpConn == nil {
			return nil, fmt.Errorf("events driver amqp requires an AMQP connection")
		}
		return NewAMQPPublisher(amqpConn), nil
	case constants.EventsDriverNone:
		return NoopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}
