package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/bookings"
	"github.com/piresc/hubber/services/bookings/mocks"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type ucFixture struct {
	uc   *BookingUC
	repo *mocks.MockBookingRepo
	tx   *mocks.MockBookingTx
	idem *mocks.MockIdempotencyStore
	gw   *mocks.MockBookingGW
}

func newFixture(t *testing.T) *ucFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &ucFixture{
		repo: mocks.NewMockBookingRepo(ctrl),
		tx:   mocks.NewMockBookingTx(ctrl),
		idem: mocks.NewMockIdempotencyStore(ctrl),
		gw:   mocks.NewMockBookingGW(ctrl),
	}

	cfg := &models.Config{Booking: models.BookingConfig{CancellationWindow: 2 * time.Hour}}
	uc, err := NewBookingUC(cfg, f.repo, f.idem, f.gw)
	require.NoError(t, err)
	f.uc = uc.(*BookingUC)
	f.uc.now = func() time.Time { return testNow }

	f.repo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(bookings.BookingTx) error) error {
			return fn(f.tx)
		}).AnyTimes()

	return f
}

func passenger() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RolePassenger}
}

func driver() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleDriver}
}

func testRide(driverID uuid.UUID) *models.Ride {
	return &models.Ride{
		ID:             uuid.New(),
		DriverID:       driverID,
		Origin:         "Lisbon",
		Destination:    "Porto",
		DepartureTime:  testNow.Add(24 * time.Hour),
		PricePerSeat:   20,
		TotalSeats:     4,
		AvailableSeats: 4,
		VehicleType:    models.VehicleTypeEconomy,
		Status:         models.RideStatusAvailable,
		CreatedAt:      testNow.Add(-time.Hour),
		UpdatedAt:      testNow.Add(-time.Hour),
	}
}

func testBooking(passengerID uuid.UUID, ride *models.Ride, seats int, status models.BookingStatus) *models.Booking {
	b := &models.Booking{
		ID:               uuid.New(),
		BookingReference: "BK0011223344AA",
		PassengerID:      passengerID,
		RideID:           ride.ID,
		SeatsBooked:      seats,
		Status:           status,
		CreatedAt:        testNow.Add(-time.Hour),
		UpdatedAt:        testNow.Add(-time.Hour),
	}
	b.TotalAmount = b.CalculateTotal(ride.PricePerSeat)
	return b
}

func testPayment(booking *models.Booking, status models.PaymentStatus) *models.Payment {
	p := models.NewPendingPayment(booking, "TXN0011223344AA", testNow.Add(-time.Hour))
	p.Status = status
	return p
}

func ptr[T any](v T) *T {
	return &v
}
