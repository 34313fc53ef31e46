package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/utils"
)

// CreateRide publishes a new ride offer for the calling driver
func (uc *RideUC) CreateRide(ctx context.Context, principal models.Principal, req models.CreateRideRequest) (*models.Ride, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "RideUC.CreateRide", func() (*models.Ride, error) {
		if !principal.IsDriver() {
			return nil, apperror.Authorization("Only drivers can publish rides")
		}

		now := uc.now()
		ride, err := newRide(principal.UserID, req, now)
		if err != nil {
			return nil, err
		}

		if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
			return nil, fail(err)
		}

		logger.InfoCtx(ctx, "Ride created",
			logger.String("ride_id", ride.ID.String()),
			logger.String("driver_id", ride.DriverID.String()),
			logger.Int("seats", ride.TotalSeats))

		publish(ctx, constants.SubjectRideCreated, func() error {
			return uc.rideGW.PublishRideCreated(ctx, ride)
		})
		return ride, nil
	})
}

func newRide(driverID uuid.UUID, req models.CreateRideRequest, now time.Time) (*models.Ride, error) {
	origin := utils.SanitizeString(req.Origin)
	destination := utils.SanitizeString(req.Destination)
	switch {
	case origin == "":
		return nil, apperror.Validation("Origin is required")
	case destination == "":
		return nil, apperror.Validation("Destination is required")
	case utils.RuneLen(origin) > models.MaxPlaceLength:
		return nil, apperror.Validation("Origin must not exceed 255 characters")
	case utils.RuneLen(destination) > models.MaxPlaceLength:
		return nil, apperror.Validation("Destination must not exceed 255 characters")
	}

	departure := req.DepartureTime.UTC()
	if !departure.After(now) {
		return nil, apperror.Validation("Departure time must be in the future")
	}
	var arrival *time.Time
	if req.EstimatedArrivalTime != nil {
		a := req.EstimatedArrivalTime.UTC()
		if !a.After(departure) {
			return nil, apperror.Validation("Estimated arrival must be after departure")
		}
		arrival = &a
	}

	if req.AvailableSeats < 1 || req.AvailableSeats > models.MaxRideSeats {
		return nil, apperror.Validation("Available seats must be between 1 and 8")
	}
	if req.PricePerSeat < 0 {
		return nil, apperror.Validation("Price per seat must not be negative")
	}

	vehicleType := models.VehicleTypeEconomy
	if req.VehicleType != "" {
		if !models.IsValidVehicleType(req.VehicleType) {
			return nil, apperror.Validation("Vehicle type must be economy or premium")
		}
		vehicleType = models.VehicleType(req.VehicleType)
	}

	var notes *string
	if req.Notes != nil {
		sanitized := utils.SanitizeString(*req.Notes)
		if utils.RuneLen(sanitized) > models.MaxRideNotesLength {
			return nil, apperror.Validation("Notes must not exceed 500 characters")
		}
		notes = utils.OptionalString(&sanitized)
	}

	ride := &models.Ride{
		ID:                   uuid.New(),
		DriverID:             driverID,
		Origin:               origin,
		Destination:          destination,
		DepartureTime:        departure,
		EstimatedArrivalTime: arrival,
		PricePerSeat:         models.RoundMoney(req.PricePerSeat),
		TotalSeats:           req.AvailableSeats,
		AvailableSeats:       req.AvailableSeats,
		VehicleType:          vehicleType,
		Notes:                notes,
		Status:               models.RideStatusAvailable,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if req.OriginLat != nil || req.OriginLng != nil {
		if req.OriginLat == nil || req.OriginLng == nil {
			return nil, apperror.Validation("Both origin_lat and origin_lng are required")
		}
		lat, lng := *req.OriginLat, *req.OriginLng
		if !utils.ValidCoordinates(lat, lng) {
			return nil, apperror.Validation("Origin coordinates are out of range")
		}
		hash := utils.EncodeCoordinates(lat, lng, utils.RideGeohashPrecision)
		ride.OriginLat, ride.OriginLng, ride.OriginGeohash = &lat, &lng, &hash
	}
	return ride, nil
}

// GetRide returns a ride with its seat summary
func (uc *RideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.RideDetail, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "RideUC.GetRide", func() (*models.RideDetail, error) {
		ride, err := uc.rideRepo.GetRide(ctx, rideID)
		if err != nil {
			return nil, fail(err)
		}
		return &models.RideDetail{Ride: *ride, Seats: ride.Seats()}, nil
	})
}

// SeatInfo returns the seat accounting of a ride
func (uc *RideUC) SeatInfo(ctx context.Context, rideID uuid.UUID) (*models.SeatInfo, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, fail(err)
	}
	seats := ride.Seats()
	return &seats, nil
}

// SearchRides lists bookable rides matching the filter
func (uc *RideUC) SearchRides(ctx context.Context, filter models.RideSearchFilter) (*models.Page[*models.Ride], error) {
	return nrpkg.WithSegmentAndReturn(ctx, "RideUC.SearchRides", func() (*models.Page[*models.Ride], error) {
		if err := normalizeSearch(&filter); err != nil {
			return nil, err
		}

		found, total, err := uc.rideRepo.SearchRides(ctx, filter, uc.now())
		if err != nil {
			return nil, fail(err)
		}
		return models.NewPage(found, filter.Page, filter.PerPage, total), nil
	})
}

func normalizeSearch(filter *models.RideSearchFilter) error {
	filter.Origin = utils.SanitizeString(filter.Origin)
	filter.Destination = utils.SanitizeString(filter.Destination)

	if filter.VehicleType != "" && !models.IsValidVehicleType(filter.VehicleType) {
		return apperror.Validation("Vehicle type must be economy or premium")
	}
	if (filter.MinPrice != nil && *filter.MinPrice < 0) || (filter.MaxPrice != nil && *filter.MaxPrice < 0) {
		return apperror.Validation("Prices must not be negative")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MaxPrice <= *filter.MinPrice {
		return apperror.Validation("max_price must be greater than min_price")
	}
	if filter.MinSeats < 0 || filter.MinSeats > models.MaxRideSeats {
		return apperror.Validation("min_seats must be between 0 and 8")
	}

	if filter.NearLat != nil || filter.NearLng != nil {
		if filter.NearLat == nil || filter.NearLng == nil {
			return apperror.Validation("Both near_lat and near_lng are required")
		}
		if !utils.ValidCoordinates(*filter.NearLat, *filter.NearLng) {
			return apperror.Validation("Near coordinates are out of range")
		}
		filter.NearCells = utils.NearCells(*filter.NearLat, *filter.NearLng, utils.NearSearchPrecision)
	}

	if filter.TimeOfDay != "" {
		if _, _, ok := models.TimeOfDayHours(filter.TimeOfDay); !ok {
			return apperror.Validation("time_of_day must be morning, afternoon or evening")
		}
	}

	switch filter.SortBy {
	case "":
		filter.SortBy = models.SortPriceLow
	case models.SortPriceLow, models.SortPriceHigh, models.SortTimeEarly:
	default:
		return apperror.Validation("sort_by must be price_low, price_high or time_early")
	}

	filter.Page, filter.PerPage = models.NormalizePage(filter.Page, filter.PerPage, maxRidesPerPage)
	return nil
}

// ListDriverRides lists the calling driver's rides
func (uc *RideUC) ListDriverRides(ctx context.Context, principal models.Principal, filter models.DriverRideFilter) (*models.Page[*models.Ride], error) {
	return nrpkg.WithSegmentAndReturn(ctx, "RideUC.ListDriverRides", func() (*models.Page[*models.Ride], error) {
		if !principal.IsDriver() {
			return nil, apperror.Authorization("Only drivers can list their rides")
		}
		if filter.Status != "" && !models.IsValidRideStatus(filter.Status) {
			return nil, apperror.Validation("Invalid ride status")
		}
		if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
			return nil, apperror.Validation("from_date must not be after to_date")
		}
		filter.Page, filter.PerPage = models.NormalizePage(filter.Page, filter.PerPage, maxRidesPerPage)

		found, total, err := uc.rideRepo.ListDriverRides(ctx, principal.UserID, filter)
		if err != nil {
			return nil, fail(err)
		}
		return models.NewPage(found, filter.Page, filter.PerPage, total), nil
	})
}

// DriverStats summarises the calling driver's rides and earnings
func (uc *RideUC) DriverStats(ctx context.Context, principal models.Principal) (*models.DriverStats, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "RideUC.DriverStats", func() (*models.DriverStats, error) {
		if !principal.IsDriver() {
			return nil, apperror.Authorization("Only drivers can view driver statistics")
		}

		stats, err := uc.rideRepo.DriverStats(ctx, principal.UserID, uc.now())
		if err != nil {
			return nil, fail(err)
		}
		stats.TotalEarnings = models.RoundMoney(stats.TotalEarnings)
		stats.FillCompletionRate()
		return stats, nil
	})
}

// UpdateRideStatus applies a driver-initiated status change. Completion and
// cancellation run through the booking workflow so bookings and payments follow.
func (uc *RideUC) UpdateRideStatus(ctx context.Context, principal models.Principal, rideID uuid.UUID, req models.UpdateRideStatusRequest) (*models.Ride, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "RideUC.UpdateRideStatus", func() (*models.Ride, error) {
		if !principal.IsDriver() {
			return nil, apperror.Authorization("Only drivers can manage rides")
		}

		switch models.RideStatus(req.Status) {
		case models.RideStatusInProgress:
			return uc.startRide(ctx, principal, rideID)
		case models.RideStatusCompleted:
			return uc.lifecycle.CompleteRide(ctx, principal, rideID)
		case models.RideStatusCancelled:
			return uc.lifecycle.CancelRide(ctx, principal, rideID, req.CancellationReason)
		}
		return nil, apperror.Validation("Status must be in_progress, completed or cancelled")
	})
}

func (uc *RideUC) startRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.ownedRide(ctx, principal, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.CanTransitionTo(models.RideStatusInProgress) {
		return nil, apperror.InvalidTransition("Ride cannot be started in its current status")
	}

	started, err := uc.rideRepo.StartRide(ctx, rideID, principal.UserID, uc.now())
	if err != nil {
		return nil, fail(err)
	}

	logger.InfoCtx(ctx, "Ride started",
		logger.String("ride_id", started.ID.String()),
		logger.Int("booked_seats", started.BookedSeats()))
	return started, nil
}

func (uc *RideUC) ownedRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, fail(err)
	}
	if ride.DriverID != principal.UserID {
		return nil, apperror.Authorization("You can only manage your own rides")
	}
	return ride, nil
}
