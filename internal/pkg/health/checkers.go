package health

import (
	"context"
	"errors"
)

// Pinger is satisfied by the Postgres and Redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectionReporter is satisfied by the NATS client and the AMQP publisher
type ConnectionReporter interface {
	IsConnected() bool
}

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PingChecker checks a dependency that answers a ping
type PingChecker struct {
	client Pinger
}

// NewPingChecker creates a checker for a Postgres or Redis client
func NewPingChecker(client Pinger) *PingChecker {
	return &PingChecker{client: client}
}

// CheckHealth pings the dependency
func (p *PingChecker) CheckHealth(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// ConnectionChecker checks a broker connection
type ConnectionChecker struct {
	name   string
	client ConnectionReporter
}

// NewConnectionChecker creates a checker for a NATS or AMQP connection
func NewConnectionChecker(name string, client ConnectionReporter) *ConnectionChecker {
	return &ConnectionChecker{name: name, client: client}
}

// CheckHealth reports whether the broker connection is up
func (n *ConnectionChecker) CheckHealth(ctx context.Context) error {
	if !n.client.IsConnected() {
		return errors.New(n.name + " not connected")
	}
	return nil
}
