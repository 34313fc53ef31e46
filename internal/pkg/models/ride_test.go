package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRide_ReserveRelease(t *testing.T) {
	r := &Ride{TotalSeats: 4, AvailableSeats: 4}

	assert.NoError(t, r.Reserve(3))
	assert.Equal(t, 1, r.AvailableSeats)
	assert.Equal(t, 3, r.BookedSeats())
	assert.ErrorIs(t, r.Reserve(2), ErrSeatsExceedAvailable)
	assert.ErrorIs(t, r.Reserve(0), ErrInvalidSeatCount)

	assert.NoError(t, r.Release(2))
	assert.Equal(t, 3, r.AvailableSeats)
	assert.ErrorIs(t, r.Release(2), ErrSeatsExceedCapacity)
	assert.ErrorIs(t, r.Release(-1), ErrInvalidSeatCount)
	assert.Equal(t, 3, r.AvailableSeats)
}

func TestRide_IsAvailable(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		ride Ride
		want bool
	}{
		{name: "open", ride: Ride{Status: RideStatusAvailable, DepartureTime: now.Add(time.Hour), AvailableSeats: 1}, want: true},
		{name: "departed", ride: Ride{Status: RideStatusAvailable, DepartureTime: now.Add(-time.Minute), AvailableSeats: 1}},
		{name: "full", ride: Ride{Status: RideStatusAvailable, DepartureTime: now.Add(time.Hour)}},
		{name: "in progress", ride: Ride{Status: RideStatusInProgress, DepartureTime: now.Add(time.Hour), AvailableSeats: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ride.IsAvailable(now))
		})
	}
}

func TestRide_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RideStatus
		to   RideStatus
		want bool
	}{
		{RideStatusAvailable, RideStatusInProgress, true},
		{RideStatusAvailable, RideStatusCompleted, true},
		{RideStatusAvailable, RideStatusCancelled, true},
		{RideStatusInProgress, RideStatusCompleted, true},
		{RideStatusInProgress, RideStatusCancelled, true},
		{RideStatusInProgress, RideStatusAvailable, false},
		{RideStatusCompleted, RideStatusCancelled, false},
		{RideStatusCancelled, RideStatusAvailable, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			r := &Ride{Status: tt.from}
			assert.Equal(t, tt.want, r.CanTransitionTo(tt.to))
		})
	}
}

func TestTimeOfDayHours(t *testing.T) {
	from, to, ok := TimeOfDayHours(TimeOfDayEvening)
	assert.True(t, ok)
	assert.Equal(t, 18, from)
	assert.Equal(t, 24, to)

	_, _, ok = TimeOfDayHours("midnight")
	assert.False(t, ok)
}

func TestRide_Seats(t *testing.T) {
	r := &Ride{TotalSeats: 4, AvailableSeats: 1, PricePerSeat: 12.5}
	seats := r.Seats()
	assert.Equal(t, 3, seats.BookedSeats)
	assert.Equal(t, 1, seats.AvailableSeats)
	assert.Equal(t, 12.5, seats.PricePerSeat)
}
