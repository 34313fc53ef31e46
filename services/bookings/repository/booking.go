package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/services/bookings"
)

const (
	rideColumns = `id, driver_id, origin, destination, origin_lat, origin_lng, origin_geohash,
		departure_time, estimated_arrival_time, price_per_seat, total_seats, available_seats,
		vehicle_type, notes, status, cancellation_reason, cancelled_at, created_at, updated_at`

	bookingColumns = `id, booking_reference, passenger_id, ride_id, seats_booked, total_amount,
		status, special_requests, cancellation_reason, created_at, updated_at`

	paymentColumns = `id, booking_id, transaction_reference, amount, status, payment_method,
		payment_intent_id, refund_reason, created_at, updated_at`
)

// BookingRepo implements the booking repository interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// RunInTx runs fn inside a READ COMMITTED transaction, committing when fn
// returns nil and rolling back otherwise
func (r *BookingRepo) RunInTx(ctx context.Context, fn func(tx bookings.BookingTx) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&bookingTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT").End()

	var booking models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := r.db.GetContext(ctx, &booking, query, bookingID); err != nil {
		return nil, notFound(err, "Booking not found", "failed to get booking")
	}
	return &booking, nil
}

// GetBookingDetail retrieves a booking with its ride and payment
func (r *BookingRepo) GetBookingDetail(ctx context.Context, bookingID uuid.UUID) (*models.BookingDetail, error) {
	booking, err := r.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	ride, err := r.GetRide(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}

	payment, err := r.GetPaymentByBooking(ctx, booking.ID)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	return &models.BookingDetail{Booking: *booking, Ride: ride, Payment: payment}, nil
}

// ListPassengerBookings returns one page of a passenger's bookings, newest first,
// along with the total number of matching bookings
func (r *BookingRepo) ListPassengerBookings(ctx context.Context, passengerID uuid.UUID, filter models.BookingFilter) ([]*models.BookingDetail, int, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT").End()

	where := []string{"b.passenger_id = $1"}
	args := []interface{}{passengerID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		where = append(where, fmt.Sprintf("r.departure_time >= $%d", len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, filter.ToDate.AddDate(0, 0, 1))
		where = append(where, fmt.Sprintf("r.departure_time < $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM bookings b JOIN rides r ON r.id = b.ride_id WHERE ` + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	if total == 0 {
		return []*models.BookingDetail{}, 0, nil
	}

	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	listQuery := fmt.Sprintf(`SELECT b.id, b.booking_reference, b.passenger_id, b.ride_id, b.seats_booked,
		b.total_amount, b.status, b.special_requests, b.cancellation_reason, b.created_at, b.updated_at
		FROM bookings b JOIN rides r ON r.id = b.ride_id
		WHERE %s ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d`, whereClause, len(args)-1, len(args))

	var rows []*models.Booking
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	if len(rows) == 0 {
		return []*models.BookingDetail{}, total, nil
	}

	rideIDs := make([]string, 0, len(rows))
	bookingIDs := make([]string, 0, len(rows))
	for _, b := range rows {
		rideIDs = append(rideIDs, b.RideID.String())
		bookingIDs = append(bookingIDs, b.ID.String())
	}

	var rides []*models.Ride
	if err := r.db.SelectContext(ctx, &rides, `SELECT `+rideColumns+` FROM rides WHERE id = ANY($1)`, pq.Array(rideIDs)); err != nil {
		return nil, 0, fmt.Errorf("failed to load rides for bookings: %w", err)
	}
	ridesByID := make(map[uuid.UUID]*models.Ride, len(rides))
	for _, ride := range rides {
		ridesByID[ride.ID] = ride
	}

	var payments []*models.Payment
	if err := r.db.SelectContext(ctx, &payments, `SELECT `+paymentColumns+` FROM payments WHERE booking_id = ANY($1)`, pq.Array(bookingIDs)); err != nil {
		return nil, 0, fmt.Errorf("failed to load payments for bookings: %w", err)
	}
	paymentsByBooking := make(map[uuid.UUID]*models.Payment, len(payments))
	for _, p := range payments {
		paymentsByBooking[p.BookingID] = p
	}

	details := make([]*models.BookingDetail, 0, len(rows))
	for _, b := range rows {
		details = append(details, &models.BookingDetail{
			Booking: *b,
			Ride:    ridesByID[b.RideID],
			Payment: paymentsByBooking[b.ID],
		})
	}
	return details, total, nil
}

// GetRide retrieves a ride by ID
func (r *BookingRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT").End()

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, rideID); err != nil {
		return nil, notFound(err, "Ride not found", "failed to get ride")
	}
	return &ride, nil
}

// GetPayment retrieves a payment by ID
func (r *BookingRepo) GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "SELECT").End()

	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, paymentID); err != nil {
		return nil, notFound(err, "Payment not found", "failed to get payment")
	}
	return &payment, nil
}

// GetPaymentByBooking retrieves the payment owned by a booking
func (r *BookingRepo) GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "payments", "SELECT").End()

	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE booking_id = $1`, bookingID); err != nil {
		return nil, notFound(err, "Payment not found", "failed to get payment")
	}
	return &payment, nil
}

// notFound maps sql.ErrNoRows to a typed not-found error and wraps anything else
func notFound(err error, message, operation string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound(message)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
