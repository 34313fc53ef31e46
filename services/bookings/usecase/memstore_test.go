package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/bookings"
)

// memStore is a serialisable in-memory BookingRepo. RunInTx holds the store
// lock for the whole callback and restores a snapshot when it fails.
type memStore struct {
	mu          sync.Mutex
	rides       map[uuid.UUID]models.Ride
	bookings    map[uuid.UUID]models.Booking
	payments    map[uuid.UUID]models.Payment
	driverRides map[uuid.UUID]int
}

func newMemStore(rides ...*models.Ride) *memStore {
	s := &memStore{
		rides:       map[uuid.UUID]models.Ride{},
		bookings:    map[uuid.UUID]models.Booking{},
		payments:    map[uuid.UUID]models.Payment{},
		driverRides: map[uuid.UUID]int{},
	}
	for _, r := range rides {
		s.rides[r.ID] = *r
	}
	return s
}

type memSnapshot struct {
	rides       map[uuid.UUID]models.Ride
	bookings    map[uuid.UUID]models.Booking
	payments    map[uuid.UUID]models.Payment
	driverRides map[uuid.UUID]int
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) RunInTx(ctx context.Context, fn func(tx bookings.BookingTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := memSnapshot{
		rides:       cloneMap(s.rides),
		bookings:    cloneMap(s.bookings),
		payments:    cloneMap(s.payments),
		driverRides: cloneMap(s.driverRides),
	}
	if err := fn(&memTx{s: s}); err != nil {
		s.rides, s.bookings, s.payments, s.driverRides = snap.rides, snap.bookings, snap.payments, snap.driverRides
		return err
	}
	return nil
}

func (s *memStore) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, apperror.NotFound("Booking not found")
	}
	return &b, nil
}

func (s *memStore) GetBookingDetail(ctx context.Context, bookingID uuid.UUID) (*models.BookingDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, apperror.NotFound("Booking not found")
	}
	detail := &models.BookingDetail{Booking: b}
	if r, ok := s.rides[b.RideID]; ok {
		detail.Ride = &r
	}
	for _, p := range s.payments {
		if p.BookingID == b.ID {
			detail.Payment = &p
		}
	}
	return detail, nil
}

func (s *memStore) ListPassengerBookings(ctx context.Context, passengerID uuid.UUID, filter models.BookingFilter) ([]*models.BookingDetail, int, error) {
	s.mu.Lock()
	var ids []uuid.UUID
	for id, b := range s.bookings {
		if b.PassengerID == passengerID {
			ids = append(ids, id)
		}
	}
	s.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	rows := make([]*models.BookingDetail, 0, len(ids))
	for _, id := range ids {
		d, err := s.GetBookingDetail(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		rows = append(rows, d)
	}
	return rows, len(rows), nil
}

func (s *memStore) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rides[rideID]
	if !ok {
		return nil, apperror.NotFound("Ride not found")
	}
	return &r, nil
}

func (s *memStore) GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, apperror.NotFound("Payment not found")
	}
	return &p, nil
}

func (s *memStore) GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentByBooking(bookingID)
}

func (s *memStore) paymentByBooking(bookingID uuid.UUID) (*models.Payment, error) {
	for _, p := range s.payments {
		if p.BookingID == bookingID {
			return &p, nil
		}
	}
	return nil, apperror.NotFound("Payment not found")
}

// memTx runs with the store lock already held
type memTx struct {
	s *memStore
}

func (tx *memTx) LockRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	r, ok := tx.s.rides[rideID]
	if !ok {
		return nil, apperror.NotFound("Ride not found")
	}
	return &r, nil
}

func (tx *memTx) ReserveSeats(ctx context.Context, rideID uuid.UUID, seats int) error {
	r := tx.s.rides[rideID]
	if err := r.Reserve(seats); err != nil {
		return err
	}
	tx.s.rides[rideID] = r
	return nil
}

func (tx *memTx) ReleaseSeats(ctx context.Context, rideID uuid.UUID, seats int) error {
	r := tx.s.rides[rideID]
	if err := r.Release(seats); err != nil {
		return err
	}
	tx.s.rides[rideID] = r
	return nil
}

func (tx *memTx) UpdateRideStatus(ctx context.Context, ride *models.Ride) error {
	tx.s.rides[ride.ID] = *ride
	return nil
}

func (tx *memTx) IncrementDriverRides(ctx context.Context, driverID uuid.UUID) error {
	tx.s.driverRides[driverID]++
	return nil
}

func (tx *memTx) InsertBooking(ctx context.Context, booking *models.Booking) error {
	tx.s.bookings[booking.ID] = *booking
	return nil
}

func (tx *memTx) LockBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	b, ok := tx.s.bookings[bookingID]
	if !ok {
		return nil, apperror.NotFound("Booking not found")
	}
	return &b, nil
}

func (tx *memTx) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	tx.s.bookings[booking.ID] = *booking
	return nil
}

func (tx *memTx) LockRideBookings(ctx context.Context, rideID uuid.UUID, statuses []models.BookingStatus) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range tx.s.bookings {
		if b.RideID != rideID {
			continue
		}
		for _, st := range statuses {
			if b.Status == st {
				out = append(out, &b)
				break
			}
		}
	}
	return out, nil
}

func (tx *memTx) InsertPayment(ctx context.Context, payment *models.Payment) error {
	tx.s.payments[payment.ID] = *payment
	return nil
}

func (tx *memTx) LockPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	p, ok := tx.s.payments[paymentID]
	if !ok {
		return nil, apperror.NotFound("Payment not found")
	}
	return &p, nil
}

func (tx *memTx) LockPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	return tx.s.paymentByBooking(bookingID)
}

func (tx *memTx) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	tx.s.payments[payment.ID] = *payment
	return nil
}

// attachIntent simulates a payment intent created against the booking's payment
func (s *memStore) attachIntent(bookingID uuid.UUID, intentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.paymentByBooking(bookingID)
	if err != nil {
		return
	}
	_ = p.AttachIntent(models.PaymentMethodCard, intentID)
	s.payments[p.ID] = *p
}

// stubGW records nothing and never fails
type stubGW struct{}

func (stubGW) PublishBookingCreated(context.Context, *models.Booking) error   { return nil }
func (stubGW) PublishBookingCancelled(context.Context, *models.Booking) error { return nil }
func (stubGW) PublishPaymentCompleted(context.Context, *models.Payment) error { return nil }
func (stubGW) PublishPaymentRefunded(context.Context, *models.Payment) error  { return nil }
func (stubGW) PublishRideCompleted(context.Context, *models.Ride, []*models.Booking) error {
	return nil
}
func (stubGW) PublishRideCancelled(context.Context, *models.Ride, []*models.Booking) error {
	return nil
}
