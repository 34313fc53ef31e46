package rides

import (
	"context"

	"github.com/piresc/hubber/internal/pkg/models"
)

// RideGW defines the interface for ride event publishing
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/hubber/services/rides RideGW
type RideGW interface {
	PublishRideCreated(ctx context.Context, ride *models.Ride) error
}
