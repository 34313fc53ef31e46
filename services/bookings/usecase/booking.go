package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/utils"
	"github.com/piresc/hubber/services/bookings"
)

const (
	maxIdempotencyKeyLength = 255
	maxBookingsPerPage      = 50
)

// CreateBooking reserves seats on a ride and opens a pending payment for them
func (uc *BookingUC) CreateBooking(ctx context.Context, principal models.Principal, req models.CreateBookingRequest) (*models.BookingResult, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "BookingUC.CreateBooking", func() (*models.BookingResult, error) {
		if req.SeatsBooked < 1 {
			return nil, apperror.Validation("Seats booked must be at least 1")
		}
		specialRequests, err := validateSpecialRequests(req.SpecialRequests)
		if err != nil {
			return nil, err
		}

		key := strings.TrimSpace(req.IdempotencyKey)
		if utils.RuneLen(key) > maxIdempotencyKeyLength {
			return nil, apperror.Validation("Idempotency key must not exceed 255 characters")
		}
		useKey := key != "" && uc.idempotency != nil

		if useKey {
			claimed, value, err := uc.idempotency.Claim(ctx, principal.UserID, key)
			if err != nil {
				return nil, fail(err)
			}
			if !claimed {
				return uc.replay(ctx, principal, value)
			}
		}

		result, err := uc.createBooking(ctx, principal, req.RideID, req.SeatsBooked, specialRequests)

		if useKey {
			if err != nil {
				if releaseErr := uc.idempotency.Release(ctx, principal.UserID, key); releaseErr != nil {
					logger.WarnCtx(ctx, "Failed to release idempotency key", logger.ErrorField(releaseErr))
				}
			} else if completeErr := uc.idempotency.Complete(ctx, principal.UserID, key, result.Booking.ID); completeErr != nil {
				// a key left in flight would block retries until its TTL expires
				logger.WarnCtx(ctx, "Failed to complete idempotency key", logger.ErrorField(completeErr))
				if releaseErr := uc.idempotency.Release(ctx, principal.UserID, key); releaseErr != nil {
					logger.WarnCtx(ctx, "Failed to release idempotency key", logger.ErrorField(releaseErr))
				}
			}
		}
		if err != nil {
			return nil, err
		}

		logger.InfoCtx(ctx, "Booking created",
			logger.String("booking_id", result.Booking.ID.String()),
			logger.String("booking_reference", result.Booking.BookingReference),
			logger.String("ride_id", result.Booking.RideID.String()),
			logger.Int("seats_booked", result.Booking.SeatsBooked))

		publish(ctx, constants.SubjectBookingCreated, func() error {
			return uc.bookingGW.PublishBookingCreated(ctx, result.Booking)
		})
		return result, nil
	})
}

func (uc *BookingUC) createBooking(ctx context.Context, principal models.Principal, rideID uuid.UUID, seats int, specialRequests *string) (*models.BookingResult, error) {
	now := uc.now()
	result := &models.BookingResult{}

	err := uc.bookingRepo.RunInTx(ctx, func(tx bookings.BookingTx) error {
		ride, err := tx.LockRide(ctx, rideID)
		if err != nil {
			return err
		}
		if ride.DriverID == principal.UserID {
			return apperror.Authorization("Drivers cannot book their own ride")
		}
		if !ride.IsAvailable(now) {
			return apperror.RideUnavailable()
		}
		if !ride.HasAvailableSeats(seats) {
			return apperror.InsufficientSeats()
		}
		if err := tx.ReserveSeats(ctx, ride.ID, seats); err != nil {
			return seatError(err)
		}

		booking := &models.Booking{
			ID:               uuid.New(),
			BookingReference: utils.NewReference(models.BookingReferencePrefix),
			PassengerID:      principal.UserID,
			RideID:           ride.ID,
			SeatsBooked:      seats,
			Status:           models.BookingStatusPending,
			SpecialRequests:  specialRequests,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		booking.TotalAmount = booking.CalculateTotal(ride.PricePerSeat)
		if err := tx.InsertBooking(ctx, booking); err != nil {
			return err
		}

		payment := models.NewPendingPayment(booking, utils.NewReference(models.TransactionReferencePrefix), now)
		if err := tx.InsertPayment(ctx, payment); err != nil {
			return err
		}

		result.Booking = booking
		result.Payment = payment
		return nil
	})
	if err != nil {
		return nil, fail(err)
	}
	return result, nil
}

// replay answers a repeated request with the booking the first request created
func (uc *BookingUC) replay(ctx context.Context, principal models.Principal, value string) (*models.BookingResult, error) {
	if value == constants.IdempotencyInFlight {
		return nil, apperror.InProgress("Request already in progress")
	}

	bookingID, err := uuid.Parse(value)
	if err != nil {
		return nil, apperror.OperationFailed(err)
	}

	detail, err := uc.bookingRepo.GetBookingDetail(ctx, bookingID)
	if err != nil {
		return nil, fail(err)
	}
	if detail.PassengerID != principal.UserID {
		return nil, apperror.Authorization("You can only view your own bookings")
	}

	booking := detail.Booking
	return &models.BookingResult{Booking: &booking, Payment: detail.Payment, Replayed: true}, nil
}

// UpdateBooking changes the seat count or special requests of a pending booking
func (uc *BookingUC) UpdateBooking(ctx context.Context, principal models.Principal, bookingID uuid.UUID, req models.UpdateBookingRequest) (*models.Booking, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "BookingUC.UpdateBooking", func() (*models.Booking, error) {
		if req.SeatsBooked == nil && req.SpecialRequests == nil {
			return nil, apperror.Validation("Nothing to update")
		}
		if req.SeatsBooked != nil && *req.SeatsBooked < 1 {
			return nil, apperror.Validation("Seats booked must be at least 1")
		}
		specialRequests, err := validateSpecialRequests(req.SpecialRequests)
		if err != nil {
			return nil, err
		}

		rideID, err := uc.bookingRide(ctx, bookingID)
		if err != nil {
			return nil, fail(err)
		}

		now := uc.now()
		var updated *models.Booking

		err = uc.bookingRepo.RunInTx(ctx, func(tx bookings.BookingTx) error {
			booking, ride, err := lockBooking(ctx, tx, rideID, bookingID)
			if err != nil {
				return err
			}
			if booking.PassengerID != principal.UserID {
				return apperror.Authorization("You can only modify your own bookings")
			}
			if booking.Status != models.BookingStatusPending {
				return apperror.NotModifiable("Only pending bookings can be modified")
			}

			seatsChanged := false
			if req.SeatsBooked != nil && *req.SeatsBooked != booking.SeatsBooked {
				delta := *req.SeatsBooked - booking.SeatsBooked
				if delta > 0 {
					if !ride.HasAvailableSeats(delta) {
						return apperror.InsufficientSeats()
					}
					if err := tx.ReserveSeats(ctx, ride.ID, delta); err != nil {
						return seatError(err)
					}
				} else if err := tx.ReleaseSeats(ctx, ride.ID, -delta); err != nil {
					return err
				}
				booking.SeatsBooked = *req.SeatsBooked
				booking.TotalAmount = booking.CalculateTotal(ride.PricePerSeat)
				seatsChanged = true
			}
			if req.SpecialRequests != nil {
				booking.SpecialRequests = specialRequests
			}
			booking.UpdatedAt = now

			if err := tx.UpdateBooking(ctx, booking); err != nil {
				return err
			}

			if seatsChanged {
				payment, err := tx.LockPaymentByBooking(ctx, booking.ID)
				if err != nil {
					return err
				}
				if payment.Status == models.PaymentStatusPending {
					payment.Amount = booking.TotalAmount
					payment.UpdatedAt = now
					if err := tx.UpdatePayment(ctx, payment); err != nil {
						return err
					}
				}
			}

			updated = booking
			return nil
		})
		if err != nil {
			return nil, fail(err)
		}
		return updated, nil
	})
}

// CancelBooking cancels a booking outside the cancellation window and settles its payment
func (uc *BookingUC) CancelBooking(ctx context.Context, principal models.Principal, bookingID uuid.UUID, reason string) (*models.Booking, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "BookingUC.CancelBooking", func() (*models.Booking, error) {
		reason = utils.SanitizeString(reason)
		if utils.RuneLen(reason) > models.MaxSpecialRequestsLength {
			return nil, apperror.Validation("Cancellation reason must not exceed 500 characters")
		}
		if reason == "" {
			reason = models.DefaultBookingCancellationReason
		}

		rideID, err := uc.bookingRide(ctx, bookingID)
		if err != nil {
			return nil, fail(err)
		}

		now := uc.now()
		var (
			cancelled *models.Booking
			refunded  *models.Payment
		)

		err = uc.bookingRepo.RunInTx(ctx, func(tx bookings.BookingTx) error {
			booking, ride, err := lockBooking(ctx, tx, rideID, bookingID)
			if err != nil {
				return err
			}
			if booking.PassengerID != principal.UserID {
				return apperror.Authorization("You can only cancel your own bookings")
			}
			if !booking.IsCancellable(ride, now, uc.cancellationWindow()) {
				return apperror.NotCancellable()
			}

			if err := tx.ReleaseSeats(ctx, ride.ID, booking.SeatsBooked); err != nil {
				return err
			}

			if err := transition(booking, models.BookingStatusCancelled, now); err != nil {
				return err
			}
			booking.CancellationReason = &reason
			if err := tx.UpdateBooking(ctx, booking); err != nil {
				return err
			}

			payment, err := uc.settlePayment(ctx, tx, booking.ID, models.DefaultBookingCancellationReason, now)
			if err != nil {
				return err
			}

			cancelled = booking
			refunded = payment
			return nil
		})
		if err != nil {
			return nil, fail(err)
		}

		publish(ctx, constants.SubjectBookingCancelled, func() error {
			return uc.bookingGW.PublishBookingCancelled(ctx, cancelled)
		})
		if refunded != nil {
			publish(ctx, constants.SubjectPaymentRefunded, func() error {
				return uc.bookingGW.PublishPaymentRefunded(ctx, refunded)
			})
		}
		return cancelled, nil
	})
}

// GetBooking returns a booking with its ride and payment to its passenger or an admin
func (uc *BookingUC) GetBooking(ctx context.Context, principal models.Principal, bookingID uuid.UUID) (*models.BookingDetail, error) {
	detail, err := uc.bookingRepo.GetBookingDetail(ctx, bookingID)
	if err != nil {
		return nil, fail(err)
	}
	if detail.PassengerID != principal.UserID && !principal.IsAdmin() {
		return nil, apperror.Authorization("You can only view your own bookings")
	}
	return detail, nil
}

// ListBookings returns the caller's bookings, newest first
func (uc *BookingUC) ListBookings(ctx context.Context, principal models.Principal, filter models.BookingFilter) (*models.Page[*models.BookingDetail], error) {
	if filter.Status != "" && !models.IsValidBookingStatus(filter.Status) {
		return nil, apperror.Validation("Invalid booking status")
	}
	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
		return nil, apperror.Validation("from_date must not be after to_date")
	}
	filter.Page, filter.PerPage = models.NormalizePage(filter.Page, filter.PerPage, maxBookingsPerPage)

	rows, total, err := uc.bookingRepo.ListPassengerBookings(ctx, principal.UserID, filter)
	if err != nil {
		return nil, fail(err)
	}
	return models.NewPage(rows, filter.Page, filter.PerPage, total), nil
}

// BookingReceipt renders the PDF receipt of a paid booking
func (uc *BookingUC) BookingReceipt(ctx context.Context, principal models.Principal, bookingID uuid.UUID) ([]byte, string, error) {
	detail, err := uc.bookingRepo.GetBookingDetail(ctx, bookingID)
	if err != nil {
		return nil, "", fail(err)
	}
	if detail.PassengerID != principal.UserID {
		return nil, "", apperror.Authorization("You can only view your own bookings")
	}
	if detail.Status != models.BookingStatusConfirmed && detail.Status != models.BookingStatusCompleted {
		return nil, "", apperror.NotModifiable("Receipt available after payment")
	}

	pdf, err := renderReceipt(detail, uc.now())
	if err != nil {
		return nil, "", apperror.OperationFailed(err)
	}
	return pdf, "receipt-" + detail.BookingReference + ".pdf", nil
}

// bookingRide resolves the ride of a booking ahead of the transaction so
// every workflow takes row locks in the same order: ride, booking, payment
func (uc *BookingUC) bookingRide(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return uuid.Nil, err
	}
	return booking.RideID, nil
}

// transition moves a booking to target when its lifecycle allows it
func transition(booking *models.Booking, target models.BookingStatus, now time.Time) error {
	if !booking.CanTransitionTo(target) {
		return apperror.InvalidTransition(fmt.Sprintf("Booking cannot move from %s to %s", booking.Status, target))
	}
	booking.Status = target
	booking.UpdatedAt = now
	return nil
}

func lockBooking(ctx context.Context, tx bookings.BookingTx, rideID, bookingID uuid.UUID) (*models.Booking, *models.Ride, error) {
	ride, err := tx.LockRide(ctx, rideID)
	if err != nil {
		return nil, nil, err
	}
	booking, err := tx.LockBooking(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	return booking, ride, nil
}

// settlePayment closes the payment of a cancelled booking: completed payments
// are refunded and pending ones fail. It returns the payment when it was refunded.
func (uc *BookingUC) settlePayment(ctx context.Context, tx bookings.BookingTx, bookingID uuid.UUID, refundReason string, now time.Time) (*models.Payment, error) {
	payment, err := tx.LockPaymentByBooking(ctx, bookingID)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var refunded *models.Payment
	switch payment.Status {
	case models.PaymentStatusCompleted:
		if err := payment.MarkRefunded(refundReason); err != nil {
			return nil, err
		}
		refunded = payment
	case models.PaymentStatusPending:
		if err := payment.MarkFailed(); err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	payment.UpdatedAt = now
	if err := tx.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return refunded, nil
}

func validateSpecialRequests(raw *string) (*string, error) {
	specialRequests := utils.OptionalString(raw)
	if specialRequests != nil && utils.RuneLen(*specialRequests) > models.MaxSpecialRequestsLength {
		return nil, apperror.Validation("Special requests must not exceed 500 characters")
	}
	return specialRequests, nil
}
