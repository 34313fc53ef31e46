package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

// RideUC defines the interface for the ride catalog
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/hubber/services/rides RideUC,RideLifecycle
type RideUC interface {
	CreateRide(ctx context.Context, principal models.Principal, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.RideDetail, error)
	SearchRides(ctx context.Context, filter models.RideSearchFilter) (*models.Page[*models.Ride], error)
	ListDriverRides(ctx context.Context, principal models.Principal, filter models.DriverRideFilter) (*models.Page[*models.Ride], error)
	SeatInfo(ctx context.Context, rideID uuid.UUID) (*models.SeatInfo, error)
	UpdateRideStatus(ctx context.Context, principal models.Principal, rideID uuid.UUID, req models.UpdateRideStatusRequest) (*models.Ride, error)
	ExportManifest(ctx context.Context, principal models.Principal, rideID uuid.UUID) ([]byte, string, error)
	DriverStats(ctx context.Context, principal models.Principal) (*models.DriverStats, error)
}

// RideLifecycle runs the ride transitions that touch bookings and payments.
// The booking workflow implements it.
type RideLifecycle interface {
	CompleteRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, reason string) (*models.Ride, error)
}
