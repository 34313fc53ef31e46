package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusAvailable  RideStatus = "available"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// VehicleType represents the class of vehicle offered for a ride
type VehicleType string

const (
	VehicleTypeEconomy VehicleType = "economy"
	VehicleTypePremium VehicleType = "premium"
)

const (
	// MaxRideSeats bounds the seat capacity a driver can publish
	MaxRideSeats = 8
	// MaxPlaceLength bounds origin and destination
	MaxPlaceLength = 255
	// MaxRideNotesLength bounds the driver's free text
	MaxRideNotesLength = 500
)

// Search sort orders
const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortTimeEarly = "time_early"
)

// Departure time-of-day buckets, in UTC hours [from, to)
const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

// TimeOfDayHours returns the hour range of a time-of-day bucket
func TimeOfDayHours(bucket string) (from, to int, ok bool) {
	switch bucket {
	case TimeOfDayMorning:
		return 6, 12, true
	case TimeOfDayAfternoon:
		return 12, 18, true
	case TimeOfDayEvening:
		return 18, 24, true
	}
	return 0, 0, false
}

var (
	// ErrSeatsExceedAvailable is returned when a reservation asks for more seats than remain
	ErrSeatsExceedAvailable = errors.New("not enough seats available")
	// ErrSeatsExceedCapacity is returned when a release would push the count over capacity
	ErrSeatsExceedCapacity = errors.New("released seats exceed ride capacity")
	// ErrInvalidSeatCount is returned for zero or negative seat counts
	ErrInvalidSeatCount = errors.New("seat count must be positive")
)

// Ride represents a driver-published ride offer
type Ride struct {
	ID                   uuid.UUID   `json:"id" db:"id"`
	DriverID             uuid.UUID   `json:"driver_id" db:"driver_id"`
	Origin               string      `json:"origin" db:"origin"`
	Destination          string      `json:"destination" db:"destination"`
	OriginLat            *float64    `json:"origin_lat,omitempty" db:"origin_lat"`
	OriginLng            *float64    `json:"origin_lng,omitempty" db:"origin_lng"`
	OriginGeohash        *string     `json:"-" db:"origin_geohash"`
	DepartureTime        time.Time   `json:"departure_time" db:"departure_time"`
	EstimatedArrivalTime *time.Time  `json:"estimated_arrival_time,omitempty" db:"estimated_arrival_time"`
	PricePerSeat         float64     `json:"price_per_seat" db:"price_per_seat"`
	TotalSeats           int         `json:"total_seats" db:"total_seats"`
	AvailableSeats       int         `json:"available_seats" db:"available_seats"`
	VehicleType          VehicleType `json:"vehicle_type" db:"vehicle_type"`
	Notes                *string     `json:"notes,omitempty" db:"notes"`
	Status               RideStatus  `json:"status" db:"status"`
	CancellationReason   *string     `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	CancelledAt          *time.Time  `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt            time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at" db:"updated_at"`
}

// HasAvailableSeats reports whether n seats can still be reserved
func (r *Ride) HasAvailableSeats(n int) bool {
	return r.AvailableSeats >= n
}

// IsAvailable reports whether the ride can accept new bookings at the given instant
func (r *Ride) IsAvailable(now time.Time) bool {
	return r.Status == RideStatusAvailable &&
		r.DepartureTime.After(now) &&
		r.AvailableSeats > 0
}

// Reserve takes n seats from the available pool
func (r *Ride) Reserve(n int) error {
	if n <= 0 {
		return ErrInvalidSeatCount
	}
	if !r.HasAvailableSeats(n) {
		return ErrSeatsExceedAvailable
	}
	r.AvailableSeats -= n
	return nil
}

// Release returns n seats to the available pool
func (r *Ride) Release(n int) error {
	if n <= 0 {
		return ErrInvalidSeatCount
	}
	if r.AvailableSeats+n > r.TotalSeats {
		return ErrSeatsExceedCapacity
	}
	r.AvailableSeats += n
	return nil
}

// BookedSeats is the number of seats currently held by bookings
func (r *Ride) BookedSeats() int {
	return r.TotalSeats - r.AvailableSeats
}

// CanTransitionTo reports whether the ride may move to the target status.
// Completed and cancelled are terminal and a ride never returns to available.
func (r *Ride) CanTransitionTo(target RideStatus) bool {
	switch r.Status {
	case RideStatusAvailable:
		return target == RideStatusInProgress || target == RideStatusCompleted || target == RideStatusCancelled
	case RideStatusInProgress:
		return target == RideStatusCompleted || target == RideStatusCancelled
	default:
		return false
	}
}

// IsValidRideStatus checks a raw status string
func IsValidRideStatus(s string) bool {
	switch RideStatus(s) {
	case RideStatusAvailable, RideStatusInProgress, RideStatusCompleted, RideStatusCancelled:
		return true
	}
	return false
}

// IsValidVehicleType checks a raw vehicle type string
func IsValidVehicleType(s string) bool {
	return VehicleType(s) == VehicleTypeEconomy || VehicleType(s) == VehicleTypePremium
}

// CreateRideRequest is the payload a driver sends to publish a ride
type CreateRideRequest struct {
	Origin               string     `json:"origin"`
	Destination          string     `json:"destination"`
	OriginLat            *float64   `json:"origin_lat,omitempty"`
	OriginLng            *float64   `json:"origin_lng,omitempty"`
	DepartureTime        time.Time  `json:"departure_time"`
	EstimatedArrivalTime *time.Time `json:"estimated_arrival_time,omitempty"`
	AvailableSeats       int        `json:"available_seats"`
	PricePerSeat         float64    `json:"price_per_seat"`
	VehicleType          string     `json:"vehicle_type"`
	Notes                *string    `json:"notes,omitempty"`
}

// UpdateRideStatusRequest is the payload for driver-initiated status changes
type UpdateRideStatusRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

// RideSearchFilter holds the public search criteria
type RideSearchFilter struct {
	Origin        string
	Destination   string
	DepartureDate *time.Time
	VehicleType   string
	MinPrice      *float64
	MaxPrice      *float64
	MinSeats      int
	NearLat       *float64
	NearLng       *float64
	NearCells     []string
	TimeOfDay     string
	SortBy        string
	Page          int
	PerPage       int
}

// DriverRideFilter holds the criteria for a driver's own ride listing
type DriverRideFilter struct {
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	PerPage  int
}

// SeatInfo summarises seat accounting for a ride
type SeatInfo struct {
	RideID         uuid.UUID `json:"ride_id"`
	TotalSeats     int       `json:"total_seats"`
	BookedSeats    int       `json:"booked_seats"`
	AvailableSeats int       `json:"available_seats"`
	PricePerSeat   float64   `json:"price_per_seat"`
}

// DriverStats summarises a driver's rides and earnings
type DriverStats struct {
	DriverID       uuid.UUID `json:"driver_id" db:"-"`
	TotalRides     int       `json:"total_rides" db:"total_rides"`
	CompletedRides int       `json:"completed_rides" db:"completed_rides"`
	CancelledRides int       `json:"cancelled_rides" db:"cancelled_rides"`
	UpcomingRides  int       `json:"upcoming_rides" db:"upcoming_rides"`
	CompletionRate float64   `json:"completion_rate" db:"-"`
	Rating         *float64  `json:"rating" db:"rating"`
	TotalEarnings  float64   `json:"total_earnings" db:"total_earnings"`
}

// FillCompletionRate derives the percentage of rides that completed
func (s *DriverStats) FillCompletionRate() {
	if s.TotalRides == 0 {
		s.CompletionRate = 0
		return
	}
	s.CompletionRate = RoundMoney(float64(s.CompletedRides) / float64(s.TotalRides) * 100)
}

// Seats summarises the ride's seat accounting
func (r *Ride) Seats() SeatInfo {
	return SeatInfo{
		RideID:         r.ID,
		TotalSeats:     r.TotalSeats,
		BookedSeats:    r.BookedSeats(),
		AvailableSeats: r.AvailableSeats,
		PricePerSeat:   r.PricePerSeat,
	}
}

// RideDetail is a ride together with its seat summary
type RideDetail struct {
	Ride
	Seats SeatInfo `json:"seats"`
}

// ManifestRow is one booking line of a driver's passenger manifest
type ManifestRow struct {
	BookingReference string        `db:"booking_reference"`
	PassengerID      uuid.UUID     `db:"passenger_id"`
	PassengerName    string        `db:"passenger_name"`
	SeatsBooked      int           `db:"seats_booked"`
	TotalAmount      float64       `db:"total_amount"`
	BookingStatus    BookingStatus `db:"booking_status"`
	PaymentStatus    *string       `db:"payment_status"`
	SpecialRequests  *string       `db:"special_requests"`
}

// RideEvent is the payload published for ride lifecycle events
type RideEvent struct {
	RideID         string     `json:"ride_id"`
	DriverID       string     `json:"driver_id"`
	Status         string     `json:"status"`
	Origin         string     `json:"origin,omitempty"`
	Destination    string     `json:"destination,omitempty"`
	DepartureTime  *time.Time `json:"departure_time,omitempty"`
	AvailableSeats int        `json:"available_seats"`
	BookingIDs     []string   `json:"booking_ids,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}
