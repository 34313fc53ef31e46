package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmPayment_Success(t *testing.T) {
	// Arrange
	f := newFixture(t)
	p := passenger()
	ride := testRide(uuid.New())
	booking := testBooking(p.UserID, ride, 2, models.BookingStatusPending)
	payment := testPayment(booking, models.PaymentStatusPending)
	payment.PaymentIntentID = ptr("pi_abc")

	f.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.tx.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.tx.EXPECT().LockBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.tx.EXPECT().LockPaymentByBooking(gomock.Any(), booking.ID).Return(payment, nil)
	f.tx.EXPECT().UpdatePayment(gomock.Any(), payment).Return(nil)
	f.tx.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	f.gw.EXPECT().PublishPaymentCompleted(gomock.Any(), payment).Return(nil)

	// Act
	confirmed, err := f.uc.ConfirmPayment(context.Background(), p, booking.ID, "pi_abc")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, confirmed.Status)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func TestConfirmPayment_Rejections(t *testing.T) {
	owner := passenger()

	tests := []struct {
		name          string
		principal     models.Principal
		bookingStatus models.BookingStatus
		paymentStatus models.PaymentStatus
		storedIntent  *string
		intent        string
		wantErr       error
		wantMessage   string
	}{
		{
			name:          "not owner",
			principal:     passenger(),
			bookingStatus: models.BookingStatusPending,
			paymentStatus: models.PaymentStatusPending,
			storedIntent:  ptr("pi_abc"),
			intent:        "pi_abc",
			wantErr:       apperror.ErrAuthorization,
		},
		{
			name:          "already processed",
			principal:     owner,
			bookingStatus: models.BookingStatusConfirmed,
			paymentStatus: models.PaymentStatusCompleted,
			storedIntent:  ptr("pi_abc"),
			intent:        "pi_abc",
			wantErr:       apperror.ErrInvalidPayment,
			wantMessage:   "Payment has already been processed",
		},
		{
			name:          "intent mismatch",
			principal:     owner,
			bookingStatus: models.BookingStatusPending,
			paymentStatus: models.PaymentStatusPending,
			storedIntent:  ptr("pi_abc"),
			intent:        "pi_other",
			wantErr:       apperror.ErrInvalidPayment,
			wantMessage:   "Invalid payment intent",
		},
		{
			name:          "no intent attached",
			principal:     owner,
			bookingStatus: models.BookingStatusPending,
			paymentStatus: models.PaymentStatusPending,
			intent:        "pi_abc",
			wantErr:       apperror.ErrInvalidPayment,
			wantMessage:   "Invalid payment intent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ride := testRide(uuid.New())
			booking := testBooking(owner.UserID, ride, 1, tt.bookingStatus)
			payment := testPayment(booking, tt.paymentStatus)
			payment.PaymentIntentID = tt.storedIntent

			f.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
			f.tx.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
			f.tx.EXPECT().LockBooking(gomock.Any(), booking.ID).Return(booking, nil)
			f.tx.EXPECT().LockPaymentByBooking(gomock.Any(), booking.ID).Return(payment, nil).MaxTimes(1)

			_, err := f.uc.ConfirmPayment(context.Background(), tt.principal, booking.ID, tt.intent)

			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, apperror.From(err).Message)
			}
		})
	}
}

func TestConfirmPayment_RideClosed(t *testing.T) {
	for _, status := range []models.RideStatus{models.RideStatusCompleted, models.RideStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			p := passenger()
			ride := testRide(uuid.New())
			ride.Status = status
			booking := testBooking(p.UserID, ride, 2, models.BookingStatusPending)

			f.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
			f.tx.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
			f.tx.EXPECT().LockBooking(gomock.Any(), booking.ID).Return(booking, nil)

			_, err := f.uc.ConfirmPayment(context.Background(), p, booking.ID, "pi_abc")

			require.ErrorIs(t, err, apperror.ErrInvalidPayment)
			assert.Equal(t, "Ride is no longer accepting payments", apperror.From(err).Message)
			assert.Equal(t, models.BookingStatusPending, booking.Status)
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{from: models.BookingStatusPending, to: models.BookingStatusConfirmed, allowed: true},
		{from: models.BookingStatusPending, to: models.BookingStatusCancelled, allowed: true},
		{from: models.BookingStatusPending, to: models.BookingStatusCompleted},
		{from: models.BookingStatusConfirmed, to: models.BookingStatusCompleted, allowed: true},
		{from: models.BookingStatusConfirmed, to: models.BookingStatusCancelled, allowed: true},
		{from: models.BookingStatusCancelled, to: models.BookingStatusConfirmed},
		{from: models.BookingStatusCompleted, to: models.BookingStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			booking := &models.Booking{Status: tt.from}

			err := transition(booking, tt.to, testNow)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, booking.Status)
				assert.Equal(t, testNow, booking.UpdatedAt)
				return
			}
			require.ErrorIs(t, err, apperror.ErrInvalidTransition)
			assert.Equal(t, tt.from, booking.Status)
		})
	}
}

func TestConfirmPayment_RequiresIntent(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.ConfirmPayment(context.Background(), passenger(), uuid.New(), "  ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRefundPayment_Success(t *testing.T) {
	// Arrange
	f := newFixture(t)
	p := passenger()
	ride := testRide(uuid.New())
	ride.AvailableSeats = 2
	booking := testBooking(p.UserID, ride, 2, models.BookingStatusConfirmed)
	payment := testPayment(booking, models.PaymentStatusCompleted)

	f.repo.EXPECT().GetPayment(gomock.Any(), payment.ID).Return(payment, nil)
	f.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.tx.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.tx.EXPECT().LockBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.tx.EXPECT().LockPayment(gomock.Any(), payment.ID).Return(payment, nil)
	f.tx.EXPECT().UpdatePayment(gomock.Any(), payment).Return(nil)
	f.tx.EXPECT().ReleaseSeats(gomock.Any(), ride.ID, 2).Return(nil)
	f.tx.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	f.gw.EXPECT().PublishPaymentRefunded(gomock.Any(), payment).Return(nil)
	f.gw.EXPECT().PublishBookingCancelled(gomock.Any(), booking).Return(nil)

	// Act
	refunded, err := f.uc.RefundPayment(context.Background(), p, payment.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, refunded.Status)
	assert.Equal(t, models.RefundReasonUserRequest, *refunded.RefundReason)
	assert.Equal(t, models.BookingStatusCancelled, booking.Status)
}

func TestRefundPayment_Rejections(t *testing.T) {
	owner := passenger()

	tests := []struct {
		name          string
		principal     models.Principal
		paymentStatus models.PaymentStatus
		departure     time.Duration
		wantErr       error
	}{
		{name: "not owner", principal: passenger(), paymentStatus: models.PaymentStatusCompleted, departure: 24 * time.Hour, wantErr: apperror.ErrAuthorization},
		{name: "pending payment", principal: owner, paymentStatus: models.PaymentStatusPending, departure: 24 * time.Hour, wantErr: apperror.ErrNotRefundable},
		{name: "already refunded", principal: owner, paymentStatus: models.PaymentStatusRefunded, departure: 24 * time.Hour, wantErr: apperror.ErrNotRefundable},
		{name: "inside window", principal: owner, paymentStatus: models.PaymentStatusCompleted, departure: time.Hour, wantErr: apperror.ErrNotRefundable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ride := testRide(uuid.New())
			ride.DepartureTime = testNow.Add(tt.departure)
			booking := testBooking(owner.UserID, ride, 1, models.BookingStatusConfirmed)
			payment := testPayment(booking, tt.paymentStatus)

			f.repo.EXPECT().GetPayment(gomock.Any(), payment.ID).Return(payment, nil)
			f.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
			f.tx.EXPECT().LockRide(gomock.Any(), ride.ID).Return(ride, nil)
			f.tx.EXPECT().LockBooking(gomock.Any(), booking.ID).Return(booking, nil)
			f.tx.EXPECT().LockPayment(gomock.Any(), payment.ID).Return(payment, nil).MaxTimes(1)

			_, err := f.uc.RefundPayment(context.Background(), tt.principal, payment.ID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRefundPayment_NotFound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetPayment(gomock.Any(), id).Return(nil, apperror.NotFound("Payment not found"))

	_, err := f.uc.RefundPayment(context.Background(), passenger(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
