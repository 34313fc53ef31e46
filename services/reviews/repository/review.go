package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/services/reviews"
)

const (
	reviewColumns = `id, ride_id, booking_id, reviewer_id, reviewee_id, review_type, rating,
		comment, created_at, updated_at`

	rideColumns = `id, driver_id, origin, destination, origin_lat, origin_lng, origin_geohash,
		departure_time, estimated_arrival_time, price_per_seat, total_seats, available_seats,
		vehicle_type, notes, status, cancellation_reason, cancelled_at, created_at, updated_at`

	bookingColumns = `id, booking_reference, passenger_id, ride_id, seats_booked, total_amount,
		status, special_requests, cancellation_reason, created_at, updated_at`

	// uniqueViolation is the SQLSTATE of a unique constraint failure
	uniqueViolation = "23505"
)

// ReviewRepo implements the review repository
type ReviewRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(cfg *models.Config, db *sqlx.DB) *ReviewRepo {
	return &ReviewRepo{
		cfg: cfg,
		db:  db,
	}
}

// RunInTx runs fn inside one transaction, committing when fn returns nil
func (r *ReviewRepo) RunInTx(ctx context.Context, fn func(tx reviews.ReviewTx) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&reviewTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by ID
func (r *ReviewRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT").End()

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, rideID); err != nil {
		return nil, notFound(err, "Ride not found", "failed to get ride")
	}
	return &ride, nil
}

// GetUser retrieves the rating fields of a user
func (r *ReviewRepo) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "users", "SELECT").End()

	var user models.User
	query := `SELECT id, name, role, rating, total_rides FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		return nil, notFound(err, "User not found", "failed to get user")
	}
	return &user, nil
}

// FindCompletedBooking returns the completed booking a passenger holds on a ride
func (r *ReviewRepo) FindCompletedBooking(ctx context.Context, rideID, passengerID uuid.UUID) (*models.Booking, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT").End()

	var booking models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE ride_id = $1 AND passenger_id = $2 AND status = $3
		ORDER BY created_at LIMIT 1`
	if err := r.db.GetContext(ctx, &booking, query, rideID, passengerID, models.BookingStatusCompleted); err != nil {
		return nil, notFound(err, "Completed booking not found", "failed to find completed booking")
	}
	return &booking, nil
}

// ReviewExists reports whether the reviewer already reviewed the reviewee on a ride
func (r *ReviewRepo) ReviewExists(ctx context.Context, rideID, reviewerID, revieweeID uuid.UUID) (bool, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "SELECT").End()

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE ride_id = $1 AND reviewer_id = $2 AND reviewee_id = $3)`
	if err := r.db.GetContext(ctx, &exists, query, rideID, reviewerID, revieweeID); err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}
	return exists, nil
}

// GetReview retrieves a review by ID
func (r *ReviewRepo) GetReview(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "SELECT").End()

	var review models.Review
	if err := r.db.GetContext(ctx, &review, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, reviewID); err != nil {
		return nil, notFound(err, "Review not found", "failed to get review")
	}
	return &review, nil
}

// ListReceived returns one page of the reviews of a given type a user received, newest first
func (r *ReviewRepo) ListReceived(ctx context.Context, revieweeID uuid.UUID, reviewType models.ReviewType, page, perPage int) ([]*models.Review, int, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "SELECT").End()

	var total int
	countQuery := `SELECT COUNT(*) FROM reviews WHERE reviewee_id = $1 AND review_type = $2`
	if err := r.db.GetContext(ctx, &total, countQuery, revieweeID, reviewType); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	if total == 0 {
		return []*models.Review{}, 0, nil
	}

	var rows []*models.Review
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE reviewee_id = $1 AND review_type = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	if err := r.db.SelectContext(ctx, &rows, query, revieweeID, reviewType, perPage, (page-1)*perPage); err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	return rows, total, nil
}

// RatingCounts returns how many reviews of a type a user received per rating
func (r *ReviewRepo) RatingCounts(ctx context.Context, revieweeID uuid.UUID, reviewType models.ReviewType) (map[int]int, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "SELECT").End()

	var rows []struct {
		Rating int `db:"rating"`
		Count  int `db:"count"`
	}
	query := `SELECT rating, COUNT(*) AS count FROM reviews
		WHERE reviewee_id = $1 AND review_type = $2 GROUP BY rating`
	if err := r.db.SelectContext(ctx, &rows, query, revieweeID, reviewType); err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Rating] = row.Count
	}
	return counts, nil
}

// ListByReviewer returns every review a user wrote, newest first
func (r *ReviewRepo) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*models.Review, error) {
	return r.listBy(ctx, "reviewer_id", reviewerID)
}

// ListByReviewee returns every review a user received, newest first
func (r *ReviewRepo) ListByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]*models.Review, error) {
	return r.listBy(ctx, "reviewee_id", revieweeID)
}

func (r *ReviewRepo) listBy(ctx context.Context, column string, userID uuid.UUID) ([]*models.Review, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "SELECT").End()

	rows := []*models.Review{}
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE ` + column + ` = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return rows, nil
}

// PassengerPendingReviews lists completed bookings whose driver the passenger has not reviewed
func (r *ReviewRepo) PassengerPendingReviews(ctx context.Context, passengerID uuid.UUID) ([]*models.PendingReview, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT").End()

	rows := []*models.PendingReview{}
	query := `SELECT b.id AS booking_id, r.id AS ride_id, r.driver_id AS reviewee_id,
		$2::varchar AS review_type, r.origin, r.destination, r.departure_time
		FROM bookings b JOIN rides r ON r.id = b.ride_id
		WHERE b.passenger_id = $1 AND b.status = $3
		AND NOT EXISTS (SELECT 1 FROM reviews v
			WHERE v.ride_id = b.ride_id AND v.reviewer_id = $1 AND v.review_type = $2)
		ORDER BY r.departure_time DESC`
	err := r.db.SelectContext(ctx, &rows, query,
		passengerID, models.ReviewTypeDriver, models.BookingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return rows, nil
}

// DriverPendingReviews lists passengers of the driver's completed rides still waiting for a review
func (r *ReviewRepo) DriverPendingReviews(ctx context.Context, driverID uuid.UUID) ([]*models.PendingReview, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "bookings", "SELECT").End()

	rows := []*models.PendingReview{}
	query := `SELECT b.id AS booking_id, r.id AS ride_id, b.passenger_id AS reviewee_id,
		$2::varchar AS review_type, r.origin, r.destination, r.departure_time
		FROM bookings b JOIN rides r ON r.id = b.ride_id
		WHERE r.driver_id = $1 AND r.status = $3 AND b.status = $4
		AND NOT EXISTS (SELECT 1 FROM reviews v
			WHERE v.ride_id = b.ride_id AND v.reviewer_id = $1 AND v.reviewee_id = b.passenger_id)
		ORDER BY r.departure_time DESC`
	err := r.db.SelectContext(ctx, &rows, query,
		driverID, models.ReviewTypePassenger, models.RideStatusCompleted, models.BookingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return rows, nil
}

// reviewTx implements reviews.ReviewTx on top of one sqlx transaction
type reviewTx struct {
	tx *sqlx.Tx
}

// InsertReview stores a new review
func (t *reviewTx) InsertReview(ctx context.Context, review *models.Review) error {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "INSERT").End()

	query := `INSERT INTO reviews (` + reviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := t.tx.ExecContext(ctx, query,
		review.ID, review.RideID, review.BookingID, review.ReviewerID, review.RevieweeID,
		review.ReviewType, review.Rating, review.Comment, review.CreatedAt, review.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.AlreadyReviewed()
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// UpdateReview persists the rating and comment of a review
func (t *reviewTx) UpdateReview(ctx context.Context, review *models.Review) error {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "UPDATE").End()

	query := `UPDATE reviews SET rating = $1, comment = $2, updated_at = $3 WHERE id = $4`
	result, err := t.tx.ExecContext(ctx, query, review.Rating, review.Comment, review.UpdatedAt, review.ID)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return expectRow(result, "failed to update review")
}

// DeleteReview removes a review
func (t *reviewTx) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "DELETE").End()

	result, err := t.tx.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return expectRow(result, "failed to delete review")
}

// RecomputeRating stores round(avg(rating), 1) on the user; AVG over no rows yields NULL
func (t *reviewTx) RecomputeRating(ctx context.Context, userID uuid.UUID) (*float64, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "users", "UPDATE").End()

	var rating sql.NullFloat64
	query := `UPDATE users SET rating = (
			SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE reviewee_id = $1
		), updated_at = NOW() WHERE id = $1 RETURNING rating`
	if err := t.tx.GetContext(ctx, &rating, query, userID); err != nil {
		return nil, notFound(err, "User not found", "failed to recompute rating")
	}
	if !rating.Valid {
		return nil, nil
	}
	return &rating.Float64, nil
}

func expectRow(result sql.Result, operation string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	if rows == 0 {
		return apperror.NotFound("Review not found")
	}
	return nil
}

// isUniqueViolation matches lib/pq errors and anything else exposing its SQLSTATE, as pgconn does
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	var state interface{ SQLState() string }
	return errors.As(err, &state) && state.SQLState() == uniqueViolation
}

func notFound(err error, message, operation string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound(message)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
