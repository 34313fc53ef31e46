package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/utils"
	"github.com/piresc/hubber/services/bookings"
)

// CompleteRide closes a ride: confirmed bookings complete, unpaid ones are
// cancelled and the driver's ride count grows
func (uc *BookingUC) CompleteRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "BookingUC.CompleteRide", func() (*models.Ride, error) {
		if !principal.IsDriver() {
			return nil, apperror.Authorization("Only drivers can complete rides")
		}

		now := uc.now()
		var (
			completed *models.Ride
			finished  []*models.Booking
			dropped   []*models.Booking
		)

		err := uc.bookingRepo.RunInTx(ctx, func(tx bookings.BookingTx) error {
			finished, dropped = nil, nil
			ride, err := tx.LockRide(ctx, rideID)
			if err != nil {
				return err
			}
			if ride.DriverID != principal.UserID {
				return apperror.Authorization("You can only manage your own rides")
			}
			switch ride.Status {
			case models.RideStatusCompleted:
				return apperror.AlreadyCompleted()
			case models.RideStatusCancelled:
				return apperror.InvalidTransition("Cancelled rides cannot be completed")
			}

			active, err := tx.LockRideBookings(ctx, ride.ID, []models.BookingStatus{
				models.BookingStatusPending,
				models.BookingStatusConfirmed,
			})
			if err != nil {
				return err
			}
			reason := models.RideCompletedCancellationReason
			for _, booking := range active {
				if booking.Status == models.BookingStatusConfirmed {
					if err := transition(booking, models.BookingStatusCompleted, now); err != nil {
						return err
					}
					if err := tx.UpdateBooking(ctx, booking); err != nil {
						return err
					}
					finished = append(finished, booking)
					continue
				}

				// unpaid bookings never ride: cancel them and fail their payment
				if err := transition(booking, models.BookingStatusCancelled, now); err != nil {
					return err
				}
				booking.CancellationReason = &reason
				if err := tx.UpdateBooking(ctx, booking); err != nil {
					return err
				}
				if _, err := uc.settlePayment(ctx, tx, booking.ID, reason, now); err != nil {
					return err
				}
				ride.AvailableSeats = min(ride.AvailableSeats+booking.SeatsBooked, ride.TotalSeats)
				dropped = append(dropped, booking)
			}

			ride.Status = models.RideStatusCompleted
			ride.UpdatedAt = now
			if err := tx.UpdateRideStatus(ctx, ride); err != nil {
				return err
			}
			if err := tx.IncrementDriverRides(ctx, ride.DriverID); err != nil {
				return err
			}

			completed = ride
			return nil
		})
		if err != nil {
			return nil, fail(err)
		}

		logger.InfoCtx(ctx, "Ride completed",
			logger.String("ride_id", completed.ID.String()),
			logger.Int("bookings_completed", len(finished)),
			logger.Int("bookings_cancelled", len(dropped)))

		publish(ctx, constants.SubjectRideCompleted, func() error {
			return uc.bookingGW.PublishRideCompleted(ctx, completed, finished)
		})
		for _, booking := range dropped {
			publish(ctx, constants.SubjectBookingCancelled, func() error {
				return uc.bookingGW.PublishBookingCancelled(ctx, booking)
			})
		}
		return completed, nil
	})
}

// CancelRide cancels a ride with every active booking on it, refunding paid bookings
func (uc *BookingUC) CancelRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, reason string) (*models.Ride, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "BookingUC.CancelRide", func() (*models.Ride, error) {
		if !principal.IsDriver() {
			return nil, apperror.Authorization("Only drivers can cancel rides")
		}
		reason = utils.SanitizeString(reason)
		if reason == "" {
			return nil, apperror.Validation("Cancellation reason is required")
		}
		if utils.RuneLen(reason) > models.MaxSpecialRequestsLength {
			return nil, apperror.Validation("Cancellation reason must not exceed 500 characters")
		}

		now := uc.now()
		var (
			cancelled *models.Ride
			affected  []*models.Booking
			refunds   []*models.Payment
		)

		err := uc.bookingRepo.RunInTx(ctx, func(tx bookings.BookingTx) error {
			ride, err := tx.LockRide(ctx, rideID)
			if err != nil {
				return err
			}
			if ride.DriverID != principal.UserID {
				return apperror.Authorization("You can only manage your own rides")
			}
			if !ride.CanTransitionTo(models.RideStatusCancelled) {
				return apperror.InvalidTransition("Ride cannot be cancelled in its current status")
			}

			active, err := tx.LockRideBookings(ctx, ride.ID, []models.BookingStatus{
				models.BookingStatusPending,
				models.BookingStatusConfirmed,
			})
			if err != nil {
				return err
			}
			for _, booking := range active {
				if err := transition(booking, models.BookingStatusCancelled, now); err != nil {
					return err
				}
				booking.CancellationReason = &reason
				if err := tx.UpdateBooking(ctx, booking); err != nil {
					return err
				}

				refund, err := uc.settlePayment(ctx, tx, booking.ID, models.RefundReasonRideCancelled, now)
				if err != nil {
					return err
				}
				if refund != nil {
					refunds = append(refunds, refund)
				}
			}

			ride.Status = models.RideStatusCancelled
			ride.AvailableSeats = ride.TotalSeats
			ride.CancellationReason = &reason
			ride.CancelledAt = &now
			ride.UpdatedAt = now
			if err := tx.UpdateRideStatus(ctx, ride); err != nil {
				return err
			}

			cancelled = ride
			affected = active
			return nil
		})
		if err != nil {
			return nil, fail(err)
		}

		logger.InfoCtx(ctx, "Ride cancelled",
			logger.String("ride_id", cancelled.ID.String()),
			logger.Int("bookings_cancelled", len(affected)),
			logger.Int("payments_refunded", len(refunds)))

		publish(ctx, constants.SubjectRideCancelled, func() error {
			return uc.bookingGW.PublishRideCancelled(ctx, cancelled, affected)
		})
		for _, booking := range affected {
			publish(ctx, constants.SubjectBookingCancelled, func() error {
				return uc.bookingGW.PublishBookingCancelled(ctx, booking)
			})
		}
		for _, payment := range refunds {
			publish(ctx, constants.SubjectPaymentRefunded, func() error {
				return uc.bookingGW.PublishPaymentRefunded(ctx, payment)
			})
		}
		return cancelled, nil
	})
}
