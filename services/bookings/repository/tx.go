package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
)

// bookingTx implements bookings.BookingTx on top of one sqlx transaction
type bookingTx struct {
	tx *sqlx.Tx
}

// LockRide loads a ride and holds its row lock until the transaction ends
func (t *bookingTx) LockRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT FOR UPDATE").End()

	var ride models.Ride
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, &ride, query, rideID); err != nil {
		return nil, notFound(err, "Ride not found", "failed to lock ride")
	}
	return &ride, nil
}

// ReserveSeats decrements available seats only when enough remain
func (t *bookingTx) ReserveSeats(ctx context.Context, rideID uuid.UUID, seats int) error {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "UPDATE").End()

	query := `UPDATE rides SET available_seats = available_seats - $1, updated_at = NOW()
		WHERE id = $2 AND available_seats >= $1`
	result, err := t.tx.ExecContext(ctx, query, seats, rideID)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrSeatsExceedAvailable
	}
	return nil
}

// ReleaseSeats returns seats to the ride without exceeding its capacity
func (t *bookingTx) ReleaseSeats(ctx context.Context, rideID uuid.UUID, seats int) error {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "UPDATE").End()

	query := `UPDATE rides SET available_seats = available_seats + $1, updated_at = NOW()
		WHERE id = $2 AND available_seats + $1 <= total_seats`
	result, err := t.tx.ExecContext(ctx, query, seats, rideID)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrSeatsExceedCapacity
	}
	return nil
}

// UpdateRideStatus persists the lifecycle fields of a ride
func (t *bookingTx) UpdateRideStatus(ctx context.Context, ride *models.Ride) error {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "UPDATE").End()

	query := `UPDATE rides SET status = $1, available_seats = $2, cancellation_reason = $3,
		cancelled_at = $4, updated_at = $5 WHERE id = $6`
	_, err := t.tx.ExecContext(ctx, query,
		ride.Status, ride.AvailableSeats, ride.CancellationReason,
		ride.CancelledAt, ride.UpdatedAt, ride.ID)
	if err != nil {
		return fmt.Errorf("failed to update ride status: %w", err)
	}
	return nil
}

// IncrementDriverRides bumps the completed ride counter of a driver
func (t *bookingTx) IncrementDriverRides(ctx context.Context, driverID uuid.UUID) error {
	defer nrpkg.StartDatastoreSegment(ctx, "users", "UPDATE").End()

	_, err := t.tx.ExecContext(ctx, `UPDATE users SET total_rides = total_rides + 1, updated_at = NOW() WHERE id = $1`, driverID)
	if err != nil {
		return fmt.Errorf("failed to increment driver rides: %w", err)
	}
	return nil
}

// InsertBooking stores a new booking
func (t *bookingTx) InsertBooking(ctx context.Context, booking *models.Booking) error {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "INSERT").End()

	query := `INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := t.tx.ExecContext(ctx, query,
		booking.ID, booking.BookingReference, booking.PassengerID, booking.RideID,
		booking.SeatsBooked, booking.TotalAmount, booking.Status, booking.SpecialRequests,
		booking.CancellationReason, booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// LockBooking loads a booking and holds its row lock
func (t *bookingTx) LockBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT FOR UPDATE").End()

	var booking models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, &booking, query, bookingID); err != nil {
		return nil, notFound(err, "Booking not found", "failed to lock booking")
	}
	return &booking, nil
}

// UpdateBooking persists the mutable fields of a booking
func (t *bookingTx) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "UPDATE").End()

	query := `UPDATE bookings SET seats_booked = $1, total_amount = $2, status = $3,
		special_requests = $4, cancellation_reason = $5, updated_at = $6 WHERE id = $7`
	_, err := t.tx.ExecContext(ctx, query,
		booking.SeatsBooked, booking.TotalAmount, booking.Status, booking.SpecialRequests,
		booking.CancellationReason, booking.UpdatedAt, booking.ID)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

// LockRideBookings locks every booking of a ride in one of the given statuses
func (t *bookingTx) LockRideBookings(ctx context.Context, rideID uuid.UUID, statuses []models.BookingStatus) ([]*models.Booking, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT FOR UPDATE").End()

	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}

	var rows []*models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE ride_id = $1 AND status = ANY($2) ORDER BY created_at FOR UPDATE`
	if err := t.tx.SelectContext(ctx, &rows, query, rideID, pq.Array(raw)); err != nil {
		return nil, fmt.Errorf("failed to lock ride bookings: %w", err)
	}
	return rows, nil
}

// InsertPayment stores a new payment record
func (t *bookingTx) InsertPayment(ctx context.Context, payment *models.Payment) error {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "INSERT").End()

	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := t.tx.ExecContext(ctx, query,
		payment.ID, payment.BookingID, payment.TransactionReference, payment.Amount,
		payment.Status, payment.PaymentMethod, payment.PaymentIntentID, payment.RefundReason,
		payment.CreatedAt, payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// LockPayment loads a payment by ID and holds its row lock
func (t *bookingTx) LockPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "SELECT FOR UPDATE").End()

	var payment models.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, &payment, query, paymentID); err != nil {
		return nil, notFound(err, "Payment not found", "failed to lock payment")
	}
	return &payment, nil
}

// LockPaymentByBooking loads the payment of a booking and holds its row lock
func (t *bookingTx) LockPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "SELECT FOR UPDATE").End()

	var payment models.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, &payment, query, bookingID); err != nil {
		return nil, notFound(err, "Payment not found", "failed to lock payment")
	}
	return &payment, nil
}

// UpdatePayment persists the mutable fields of a payment
func (t *bookingTx) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "UPDATE").End()

	query := `UPDATE payments SET amount = $1, status = $2, payment_method = $3,
		payment_intent_id = $4, refund_reason = $5, updated_at = $6 WHERE id = $7`
	_, err := t.tx.ExecContext(ctx, query,
		payment.Amount, payment.Status, payment.PaymentMethod, payment.PaymentIntentID,
		payment.RefundReason, payment.UpdatedAt, payment.ID)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}
