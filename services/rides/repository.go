package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

// RideRepo defines the interface for ride catalog data access.
// Seat counters are never written here; the booking workflow owns them.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/hubber/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	SearchRides(ctx context.Context, filter models.RideSearchFilter, now time.Time) ([]*models.Ride, int, error)
	ListDriverRides(ctx context.Context, driverID uuid.UUID, filter models.DriverRideFilter) ([]*models.Ride, int, error)
	// StartRide moves an available ride owned by driverID to in_progress.
	// It returns apperror.ErrInvalidTransition when no row matched.
	StartRide(ctx context.Context, rideID, driverID uuid.UUID, now time.Time) (*models.Ride, error)
	ManifestRows(ctx context.Context, rideID uuid.UUID) ([]*models.ManifestRow, error)
	DriverStats(ctx context.Context, driverID uuid.UUID, now time.Time) (*models.DriverStats, error)
}
