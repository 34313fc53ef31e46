package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
)

const rideColumns = `id, driver_id, origin, destination, origin_lat, origin_lng, origin_geohash,
	departure_time, estimated_arrival_time, price_per_seat, total_seats, available_seats,
	vehicle_type, notes, status, cancellation_reason, cancelled_at, created_at, updated_at`

// RideRepo implements the ride catalog repository
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "INSERT").End()

	query := `INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.DriverID, ride.Origin, ride.Destination, ride.OriginLat, ride.OriginLng, ride.OriginGeohash,
		ride.DepartureTime, ride.EstimatedArrivalTime, ride.PricePerSeat, ride.TotalSeats, ride.AvailableSeats,
		ride.VehicleType, ride.Notes, ride.Status, ride.CancellationReason, ride.CancelledAt, ride.CreatedAt, ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT").End()

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Ride not found")
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// queryBuilder accumulates WHERE conditions with positional arguments
type queryBuilder struct {
	where []string
	args  []interface{}
}

func (q *queryBuilder) add(condition string, arg interface{}) {
	q.args = append(q.args, arg)
	q.where = append(q.where, fmt.Sprintf(condition, len(q.args)))
}

func (q *queryBuilder) clause() string {
	return strings.Join(q.where, " AND ")
}

// SearchRides returns one page of bookable rides and the total number of matches
func (r *RideRepo) SearchRides(ctx context.Context, filter models.RideSearchFilter, now time.Time) ([]*models.Ride, int, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT").End()

	q := &queryBuilder{where: []string{"status = 'available'", "available_seats > 0"}}
	q.add("departure_time > $%d", now)

	if filter.Origin != "" {
		q.add(`origin ILIKE $%d ESCAPE '\'`, containsPattern(filter.Origin))
	}
	if filter.Destination != "" {
		q.add(`destination ILIKE $%d ESCAPE '\'`, containsPattern(filter.Destination))
	}
	if filter.DepartureDate != nil {
		q.add("departure_time >= $%d", *filter.DepartureDate)
		q.add("departure_time < $%d", filter.DepartureDate.AddDate(0, 0, 1))
	}
	if filter.VehicleType != "" {
		q.add("vehicle_type = $%d", filter.VehicleType)
	}
	if filter.MinPrice != nil {
		q.add("price_per_seat >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q.add("price_per_seat <= $%d", *filter.MaxPrice)
	}
	if filter.MinSeats > 0 {
		q.add("available_seats >= $%d", filter.MinSeats)
	}
	if len(filter.NearCells) > 0 {
		q.add(fmt.Sprintf("substring(origin_geohash, 1, %d) = ANY($%%d)", len(filter.NearCells[0])), pq.Array(filter.NearCells))
	}
	if from, to, ok := models.TimeOfDayHours(filter.TimeOfDay); ok {
		q.add("EXTRACT(HOUR FROM departure_time AT TIME ZONE 'UTC') >= $%d", from)
		q.add("EXTRACT(HOUR FROM departure_time AT TIME ZONE 'UTC') < $%d", to)
	}

	return r.page(ctx, q, searchOrder(filter.SortBy), filter.Page, filter.PerPage)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches text literally anywhere in a column
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

func searchOrder(sortBy string) string {
	switch sortBy {
	case models.SortPriceHigh:
		return "price_per_seat DESC, departure_time ASC"
	case models.SortTimeEarly:
		return "departure_time ASC, price_per_seat ASC"
	default:
		return "price_per_seat ASC, departure_time ASC"
	}
}

// ListDriverRides returns one page of a driver's rides, latest departure first
func (r *RideRepo) ListDriverRides(ctx context.Context, driverID uuid.UUID, filter models.DriverRideFilter) ([]*models.Ride, int, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT").End()

	q := &queryBuilder{}
	q.add("driver_id = $%d", driverID)
	if filter.Status != "" {
		q.add("status = $%d", filter.Status)
	}
	if filter.FromDate != nil {
		q.add("departure_time >= $%d", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q.add("departure_time < $%d", filter.ToDate.AddDate(0, 0, 1))
	}

	return r.page(ctx, q, "departure_time DESC", filter.Page, filter.PerPage)
}

func (r *RideRepo) page(ctx context.Context, q *queryBuilder, orderBy string, page, perPage int) ([]*models.Ride, int, error) {
	whereClause := q.clause()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM rides WHERE `+whereClause, q.args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count rides: %w", err)
	}
	if total == 0 {
		return []*models.Ride{}, 0, nil
	}

	args := append(q.args, perPage, (page-1)*perPage)
	query := fmt.Sprintf(`SELECT %s FROM rides WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		rideColumns, whereClause, orderBy, len(args)-1, len(args))

	rides := []*models.Ride{}
	if err := r.db.SelectContext(ctx, &rides, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list rides: %w", err)
	}
	return rides, total, nil
}

// StartRide moves an available ride to in_progress in a single guarded update
func (r *RideRepo) StartRide(ctx context.Context, rideID, driverID uuid.UUID, now time.Time) (*models.Ride, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "UPDATE").End()

	query := `UPDATE rides SET status = $1, updated_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5
		RETURNING ` + rideColumns

	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, query,
		models.RideStatusInProgress, now, rideID, driverID, models.RideStatusAvailable)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.InvalidTransition("Only available rides can be started")
		}
		return nil, fmt.Errorf("failed to start ride: %w", err)
	}
	return &ride, nil
}

// ManifestRows lists the non-cancelled bookings of a ride with their payment status
func (r *RideRepo) ManifestRows(ctx context.Context, rideID uuid.UUID) ([]*models.ManifestRow, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT").End()

	query := `SELECT b.booking_reference, b.passenger_id, COALESCE(u.name, '') AS passenger_name,
		b.seats_booked, b.total_amount, b.status AS booking_status, p.status AS payment_status,
		b.special_requests
		FROM bookings b
		LEFT JOIN users u ON u.id = b.passenger_id
		LEFT JOIN payments p ON p.booking_id = b.id
		WHERE b.ride_id = $1 AND b.status <> $2
		ORDER BY b.created_at ASC`

	rows := []*models.ManifestRow{}
	if err := r.db.SelectContext(ctx, &rows, query, rideID, models.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to load ride manifest: %w", err)
	}
	return rows, nil
}

// DriverStats aggregates a driver's ride counts with the payments collected on completed rides
func (r *RideRepo) DriverStats(ctx context.Context, driverID uuid.UUID, now time.Time) (*models.DriverStats, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT").End()

	query := `SELECT
		COUNT(*) AS total_rides,
		COUNT(*) FILTER (WHERE r.status = 'completed') AS completed_rides,
		COUNT(*) FILTER (WHERE r.status = 'cancelled') AS cancelled_rides,
		COUNT(*) FILTER (WHERE r.status = 'available' AND r.departure_time > $2) AS upcoming_rides,
		(SELECT u.rating FROM users u WHERE u.id = $1) AS rating,
		COALESCE((
			SELECT SUM(p.amount)
			FROM payments p
			JOIN bookings b ON b.id = p.booking_id
			JOIN rides pr ON pr.id = b.ride_id
			WHERE pr.driver_id = $1 AND pr.status = 'completed' AND p.status = 'completed'
		), 0) AS total_earnings
		FROM rides r
		WHERE r.driver_id = $1`

	stats := &models.DriverStats{}
	if err := r.db.GetContext(ctx, stats, query, driverID, now); err != nil {
		return nil, fmt.Errorf("failed to load driver stats: %w", err)
	}
	stats.DriverID = driverID
	return stats, nil
}
