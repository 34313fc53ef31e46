package gateway

import (
	"context"

	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/events"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/rides"
)

// rideGW publishes ride catalog events
type rideGW struct {
	publisher events.Publisher
}

// NewRideGW creates a new ride event gateway
func NewRideGW(publisher events.Publisher) rides.RideGW {
	return &rideGW{
		publisher: publisher,
	}
}

// PublishRideCreated publishes ride.created
func (g *rideGW) PublishRideCreated(ctx context.Context, ride *models.Ride) error {
	departure := ride.DepartureTime
	return g.publisher.Publish(ctx, constants.SubjectRideCreated, models.RideEvent{
		RideID:         ride.ID.String(),
		DriverID:       ride.DriverID.String(),
		Status:         string(ride.Status),
		Origin:         ride.Origin,
		Destination:    ride.Destination,
		DepartureTime:  &departure,
		AvailableSeats: ride.AvailableSeats,
		OccurredAt:     models.Now(),
	})
}
