package amqp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/hubber/internal/pkg/logger"
	amqp091 "github.com/rabbitmq/amqp091-go"
)

// Options tunes the initial connection retry loop
type Options struct {
	MaxRetries int
	RetryDelay time.Duration
	MaxDelay   time.Duration
}

// DefaultOptions retries for roughly a minute before giving up
var DefaultOptions = Options{
	MaxRetries: 10,
	RetryDelay: time.Second,
	MaxDelay:   30 * time.Second,
}

// Publisher publishes persistent JSON messages to a topic exchange
type Publisher struct {
	url      string
	exchange string
	conn     *amqp091.Connection
	ch       *amqp091.Channel
	mu       sync.RWMutex
	closed   bool
}

// NewPublisher dials RabbitMQ with exponential backoff and declares the exchange
func NewPublisher(ctx context.Context, url, exchange string, opts Options) (*Publisher, error) {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = DefaultOptions.MaxDelay
	}

	p := &Publisher{url: url, exchange: exchange}
	delay := opts.RetryDelay

	for attempt := 1; attempt <= opts.MaxRetries; attempt++ {
		err := p.connect()
		if err == nil {
			logger.Info("Connected to RabbitMQ",
				logger.String("exchange", exchange),
				logger.Int("attempt", attempt))
			return p, nil
		}

		logger.Warn("RabbitMQ connection attempt failed",
			logger.Int("attempt", attempt),
			logger.Int("max_retries", opts.MaxRetries),
			logger.ErrorField(err))

		if attempt == opts.MaxRetries {
			return nil, fmt.Errorf("failed to connect after %d attempts: %w", opts.MaxRetries, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * 1.5)
		if delay > opts.MaxDelay {
			delay = opts.MaxDelay
		}
	}

	return nil, fmt.Errorf("rabbitmq retry loop exited without a connection")
}

func (p *Publisher) connect() error {
	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(p.exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	p.mu.Lock()
	p.conn = conn
	p.ch = ch
	p.mu.Unlock()
	return nil
}

// Exchange returns the exchange messages are published to
func (p *Publisher) Exchange() string {
	return p.exchange
}

// IsConnected reports whether the underlying connection is open
func (p *Publisher) IsConnected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.conn != nil && !p.conn.IsClosed()
}

// Publish sends body to the exchange under routingKey
func (p *Publisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.RLock()
	ch := p.ch
	p.mu.RUnlock()

	if ch == nil {
		return fmt.Errorf("rabbitmq channel not available")
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return ch.PublishWithContext(
		publishCtx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
}

// Close closes the channel and connection once
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
