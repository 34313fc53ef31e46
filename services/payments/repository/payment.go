package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
)

const (
	bookingColumns = `id, booking_reference, passenger_id, ride_id, seats_booked, total_amount,
		status, special_requests, cancellation_reason, created_at, updated_at`

	paymentColumns = `id, booking_id, transaction_reference, amount, status, payment_method,
		payment_intent_id, refund_reason, created_at, updated_at`
)

// PaymentRepo implements the payment repository
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetPassengerBooking retrieves a booking scoped to its passenger
func (r *PaymentRepo) GetPassengerBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT").End()

	var booking models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND passenger_id = $2`
	if err := r.db.GetContext(ctx, &booking, query, bookingID, passengerID); err != nil {
		return nil, notFound(err, "Booking not found", "failed to get booking")
	}
	return &booking, nil
}

// GetBooking retrieves a booking by ID
func (r *PaymentRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT").End()

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID); err != nil {
		return nil, notFound(err, "Booking not found", "failed to get booking")
	}
	return &booking, nil
}

// GetPayment retrieves a payment by ID
func (r *PaymentRepo) GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "SELECT").End()

	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, paymentID); err != nil {
		return nil, notFound(err, "Payment not found", "failed to get payment")
	}
	return &payment, nil
}

// GetPaymentByBooking retrieves the payment owned by a booking
func (r *PaymentRepo) GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "SELECT").End()

	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE booking_id = $1`, bookingID); err != nil {
		return nil, notFound(err, "Payment not found", "failed to get payment")
	}
	return &payment, nil
}

// SaveIntent writes the intent only while the payment is still pending
func (r *PaymentRepo) SaveIntent(ctx context.Context, payment *models.Payment) error {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "UPDATE").End()

	query := `UPDATE payments SET payment_method = $1, payment_intent_id = $2, updated_at = $3
		WHERE id = $4 AND status = $5`
	result, err := r.db.ExecContext(ctx, query,
		payment.PaymentMethod, payment.PaymentIntentID, payment.UpdatedAt, payment.ID, models.PaymentStatusPending)
	if err != nil {
		return fmt.Errorf("failed to save payment intent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save payment intent: %w", err)
	}
	if rows == 0 {
		return apperror.InvalidPaymentState("Payment has already been processed")
	}
	return nil
}

func notFound(err error, message, operation string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound(message)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
