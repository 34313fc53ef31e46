package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ReviewType tells who is being reviewed
type ReviewType string

const (
	ReviewTypeDriver    ReviewType = "driver_review"
	ReviewTypePassenger ReviewType = "passenger_review"
)

const (
	MinRating              = 1
	MaxRating              = 5
	MaxReviewCommentLength = 1000
)

// Review is a rating left by one ride participant for another
type Review struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	RideID     uuid.UUID  `json:"ride_id" db:"ride_id"`
	BookingID  uuid.UUID  `json:"booking_id" db:"booking_id"`
	ReviewerID uuid.UUID  `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID uuid.UUID  `json:"reviewee_id" db:"reviewee_id"`
	ReviewType ReviewType `json:"review_type" db:"review_type"`
	Rating     int        `json:"rating" db:"rating"`
	Comment    *string    `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// RoundRating rounds an average rating to one decimal
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// IsValidRating checks the rating bounds
func IsValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// CreateReviewRequest is the payload for a new review
type CreateReviewRequest struct {
	RideID     uuid.UUID  `json:"ride_id"`
	Rating     int        `json:"rating"`
	Comment    *string    `json:"comment,omitempty"`
	RevieweeID *uuid.UUID `json:"reviewee_id,omitempty"`
}

// UpdateReviewRequest carries optional changes to a review
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// ReviewStats aggregates the ratings received by a user
type ReviewStats struct {
	AverageRating   *float64    `json:"average_rating"`
	TotalReviews    int         `json:"total_reviews"`
	RatingBreakdown map[int]int `json:"rating_breakdown"`
}

// NewReviewStats builds stats from per-rating counts, always listing every rating
func NewReviewStats(counts map[int]int) ReviewStats {
	stats := ReviewStats{RatingBreakdown: make(map[int]int, MaxRating)}
	sum := 0
	for r := MinRating; r <= MaxRating; r++ {
		n := counts[r]
		stats.RatingBreakdown[r] = n
		stats.TotalReviews += n
		sum += r * n
	}
	if stats.TotalReviews > 0 {
		avg := RoundRating(float64(sum) / float64(stats.TotalReviews))
		stats.AverageRating = &avg
	}
	return stats
}

// DriverReviews is a page of reviews received by a driver with their stats
type DriverReviews struct {
	Reviews *Page[*Review] `json:"reviews"`
	Stats   ReviewStats    `json:"stats"`
}

// UserReviews splits a user's reviews into given and received
type UserReviews struct {
	Given    []*Review `json:"given"`
	Received []*Review `json:"received"`
}

// PendingReview is a completed booking still waiting for a review from the caller
type PendingReview struct {
	BookingID     uuid.UUID  `json:"booking_id" db:"booking_id"`
	RideID        uuid.UUID  `json:"ride_id" db:"ride_id"`
	RevieweeID    uuid.UUID  `json:"reviewee_id" db:"reviewee_id"`
	ReviewType    ReviewType `json:"review_type" db:"review_type"`
	Origin        string     `json:"origin" db:"origin"`
	Destination   string     `json:"destination" db:"destination"`
	DepartureTime time.Time  `json:"departure_time" db:"departure_time"`
}

// ReviewEvent is the payload published when a review is left
type ReviewEvent struct {
	ReviewID   string    `json:"review_id"`
	RideID     string    `json:"ride_id"`
	ReviewerID string    `json:"reviewer_id"`
	RevieweeID string    `json:"reviewee_id"`
	ReviewType string    `json:"review_type"`
	Rating     int       `json:"rating"`
	NewAverage *float64  `json:"new_average,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
