package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/services/bookings"
)

// ConfirmPayment completes the pending payment of a booking and confirms the booking
func (uc *BookingUC) ConfirmPayment(ctx context.Context, principal models.Principal, bookingID uuid.UUID, paymentIntentID string) (*models.Payment, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "BookingUC.ConfirmPayment", func() (*models.Payment, error) {
		paymentIntentID = strings.TrimSpace(paymentIntentID)
		if paymentIntentID == "" {
			return nil, apperror.Validation("Payment intent ID is required")
		}

		rideID, err := uc.bookingRide(ctx, bookingID)
		if err != nil {
			return nil, fail(err)
		}

		now := uc.now()
		var confirmed *models.Payment

		err = uc.bookingRepo.RunInTx(ctx, func(tx bookings.BookingTx) error {
			booking, ride, err := lockBooking(ctx, tx, rideID, bookingID)
			if err != nil {
				return err
			}
			if booking.PassengerID != principal.UserID {
				return apperror.Authorization("You can only pay for your own bookings")
			}
			if ride.Status != models.RideStatusAvailable && ride.Status != models.RideStatusInProgress {
				return apperror.InvalidPaymentState("Ride is no longer accepting payments")
			}

			payment, err := tx.LockPaymentByBooking(ctx, booking.ID)
			if err != nil {
				return err
			}
			if err := payment.MarkCompleted(paymentIntentID); err != nil {
				switch {
				case errors.Is(err, models.ErrPaymentAlreadyProcessed):
					return apperror.InvalidPaymentState("Payment has already been processed")
				case errors.Is(err, models.ErrInvalidPaymentIntent):
					return apperror.InvalidPaymentState("Invalid payment intent")
				}
				return err
			}
			if booking.Status != models.BookingStatusPending {
				return apperror.InvalidPaymentState("Booking is not awaiting payment")
			}

			payment.UpdatedAt = now
			if err := tx.UpdatePayment(ctx, payment); err != nil {
				return err
			}

			if err := transition(booking, models.BookingStatusConfirmed, now); err != nil {
				return err
			}
			if err := tx.UpdateBooking(ctx, booking); err != nil {
				return err
			}

			confirmed = payment
			return nil
		})
		if err != nil {
			return nil, fail(err)
		}

		logger.InfoCtx(ctx, "Payment confirmed",
			logger.String("payment_id", confirmed.ID.String()),
			logger.String("booking_id", confirmed.BookingID.String()),
			logger.Float64("amount", confirmed.Amount))

		publish(ctx, constants.SubjectPaymentCompleted, func() error {
			return uc.bookingGW.PublishPaymentCompleted(ctx, confirmed)
		})
		return confirmed, nil
	})
}

// RefundPayment refunds a completed payment, cancels its booking and returns the seats
func (uc *BookingUC) RefundPayment(ctx context.Context, principal models.Principal, paymentID uuid.UUID) (*models.Payment, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "BookingUC.RefundPayment", func() (*models.Payment, error) {
		existing, err := uc.bookingRepo.GetPayment(ctx, paymentID)
		if err != nil {
			return nil, fail(err)
		}
		rideID, err := uc.bookingRide(ctx, existing.BookingID)
		if err != nil {
			return nil, fail(err)
		}

		now := uc.now()
		var (
			refunded  *models.Payment
			cancelled *models.Booking
		)

		err = uc.bookingRepo.RunInTx(ctx, func(tx bookings.BookingTx) error {
			booking, ride, err := lockBooking(ctx, tx, rideID, existing.BookingID)
			if err != nil {
				return err
			}
			if booking.PassengerID != principal.UserID {
				return apperror.Authorization("You can only refund your own payments")
			}

			payment, err := tx.LockPayment(ctx, paymentID)
			if err != nil {
				return err
			}
			if !payment.IsRefundable(booking, ride, now, uc.cancellationWindow()) {
				return apperror.NotRefundable()
			}

			if err := payment.MarkRefunded(models.RefundReasonUserRequest); err != nil {
				return err
			}
			payment.UpdatedAt = now
			if err := tx.UpdatePayment(ctx, payment); err != nil {
				return err
			}

			if err := tx.ReleaseSeats(ctx, ride.ID, booking.SeatsBooked); err != nil {
				return err
			}

			if err := transition(booking, models.BookingStatusCancelled, now); err != nil {
				return err
			}
			reason := models.RefundReasonUserRequest
			booking.CancellationReason = &reason
			if err := tx.UpdateBooking(ctx, booking); err != nil {
				return err
			}

			refunded = payment
			cancelled = booking
			return nil
		})
		if err != nil {
			return nil, fail(err)
		}

		logger.InfoCtx(ctx, "Payment refunded",
			logger.String("payment_id", refunded.ID.String()),
			logger.String("booking_id", refunded.BookingID.String()))

		publish(ctx, constants.SubjectPaymentRefunded, func() error {
			return uc.bookingGW.PublishPaymentRefunded(ctx, refunded)
		})
		publish(ctx, constants.SubjectBookingCancelled, func() error {
			return uc.bookingGW.PublishBookingCancelled(ctx, cancelled)
		})
		return refunded, nil
	})
}
