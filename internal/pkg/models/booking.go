package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

const (
	// DefaultCancellationWindow is the minimum lead time before departure for a cancellation
	DefaultCancellationWindow = 2 * time.Hour
	// MaxSpecialRequestsLength bounds the free text a passenger can attach
	MaxSpecialRequestsLength = 500
	// BookingReferencePrefix prefixes every booking reference
	BookingReferencePrefix = "BK"
	// DefaultBookingCancellationReason is stored when the passenger gives no reason
	DefaultBookingCancellationReason = "Booking cancelled by user"
	// RideCompletedCancellationReason is stored on bookings still unpaid when their ride completes
	RideCompletedCancellationReason = "Ride completed before payment"
	// DefaultPerPage is the listing page size
	DefaultPerPage = 10
)

// Booking represents a passenger's reservation of seats on a ride
type Booking struct {
	ID                 uuid.UUID     `json:"id" db:"id"`
	BookingReference   string        `json:"booking_reference" db:"booking_reference"`
	PassengerID        uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	RideID             uuid.UUID     `json:"ride_id" db:"ride_id"`
	SeatsBooked        int           `json:"seats_booked" db:"seats_booked"`
	TotalAmount        float64       `json:"total_amount" db:"total_amount"`
	Status             BookingStatus `json:"status" db:"status"`
	SpecialRequests    *string       `json:"special_requests,omitempty" db:"special_requests"`
	CancellationReason *string       `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingDetail is a booking together with its ride and payment
type BookingDetail struct {
	Booking
	Ride    *Ride    `json:"ride,omitempty"`
	Payment *Payment `json:"payment,omitempty"`
}

// RoundMoney rounds an amount to cents
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateTotal computes the booking total for the given seat price
func (b *Booking) CalculateTotal(pricePerSeat float64) float64 {
	return RoundMoney(float64(b.SeatsBooked) * pricePerSeat)
}

// IsActive reports whether the booking still holds seats
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsCancellable reports whether the booking can be cancelled at the given
// instant: it must still hold seats and departure must be more than window away.
func (b *Booking) IsCancellable(ride *Ride, now time.Time, window time.Duration) bool {
	if !b.IsActive() || ride == nil {
		return false
	}
	return ride.DepartureTime.After(now.Add(window))
}

// CanTransitionTo reports whether the booking may move to the target status
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch b.Status {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCompleted || target == BookingStatusCancelled
	default:
		return false
	}
}

// IsValidBookingStatus checks a raw status string
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// CreateBookingRequest is the payload used to reserve seats
type CreateBookingRequest struct {
	RideID          uuid.UUID `json:"ride_id"`
	SeatsBooked     int       `json:"seats_booked"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	IdempotencyKey  string    `json:"-"`
}

// ReserveSeatsRequest is the payload of the ride-scoped reserve endpoint
type ReserveSeatsRequest struct {
	Seats           int     `json:"seats"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// UpdateBookingRequest carries optional changes to a pending booking
type UpdateBookingRequest struct {
	SeatsBooked     *int    `json:"seats_booked,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// CancelBookingRequest carries the optional passenger reason
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// BookingFilter holds the criteria for a passenger's booking listing
type BookingFilter struct {
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	PerPage  int
}

// BookingResult is returned by booking creation
type BookingResult struct {
	Booking *Booking `json:"booking"`
	Payment *Payment `json:"payment"`
	// Replayed is set when an idempotent retry returned the original booking
	Replayed bool `json:"-"`
}

// BookingEvent is the payload published for booking lifecycle events
type BookingEvent struct {
	BookingID        string    `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	RideID           string    `json:"ride_id"`
	PassengerID      string    `json:"passenger_id"`
	SeatsBooked      int       `json:"seats_booked"`
	TotalAmount      float64   `json:"total_amount"`
	Status           string    `json:"status"`
	Reason           string    `json:"reason,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Page is a paginated listing
type Page[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// NewPage builds a page, computing the last page number from the total
func NewPage[T any](data []T, page, perPage, total int) *Page[T] {
	if data == nil {
		data = []T{}
	}
	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = (total + perPage - 1) / perPage
	}
	return &Page[T]{
		Data:        data,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}

// NormalizePage clamps page parameters to sane defaults
func NormalizePage(page, perPage, maxPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
