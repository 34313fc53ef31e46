package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/payments/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type ucFixture struct {
	uc        *PaymentUC
	repo      *mocks.MockPaymentRepo
	provider  *mocks.MockPaymentProvider
	lifecycle *mocks.MockBookingLifecycle
}

func newFixture(t *testing.T, cfg *models.Config) *ucFixture {
	ctrl := gomock.NewController(t)
	f := &ucFixture{
		repo:      mocks.NewMockPaymentRepo(ctrl),
		provider:  mocks.NewMockPaymentProvider(ctrl),
		lifecycle: mocks.NewMockBookingLifecycle(ctrl),
	}
	uc, err := NewPaymentUC(cfg, f.repo, f.provider, f.lifecycle)
	require.NoError(t, err)
	f.uc = uc.(*PaymentUC)
	f.uc.now = func() time.Time { return testNow }
	return f
}

func passenger() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RolePassenger}
}

func testBooking(passengerID uuid.UUID) *models.Booking {
	return &models.Booking{
		ID:          uuid.New(),
		PassengerID: passengerID,
		RideID:      uuid.New(),
		SeatsBooked: 2,
		TotalAmount: 40.5,
		Status:      models.BookingStatusPending,
	}
}

func testPayment(booking *models.Booking, status models.PaymentStatus) *models.Payment {
	return &models.Payment{
		ID:        uuid.New(),
		BookingID: booking.ID,
		Amount:    booking.TotalAmount,
		Status:    status,
	}
}

func TestCreatePaymentIntent_Success(t *testing.T) {
	// Arrange
	f := newFixture(t, &models.Config{Booking: models.BookingConfig{Currency: "eur"}})
	p := passenger()
	booking := testBooking(p.UserID)
	payment := testPayment(booking, models.PaymentStatusPending)

	f.repo.EXPECT().GetPassengerBooking(gomock.Any(), booking.ID, p.UserID).Return(booking, nil)
	f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), booking.ID).Return(payment, nil)
	f.provider.EXPECT().CreateIntent(gomock.Any(), int64(4050), "eur", models.PaymentMethodPaypal).
		Return(&models.PaymentIntent{ID: "pi_abc", ClientSecret: "dummy_client_secret_xyz", AmountCents: 4050, Currency: "eur"}, nil)
	f.repo.EXPECT().SaveIntent(gomock.Any(), payment).Return(nil)

	// Act
	resp, err := f.uc.CreatePaymentIntent(context.Background(), p, models.CreatePaymentIntentRequest{
		BookingID:     booking.ID,
		PaymentMethod: "paypal",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "dummy_client_secret_xyz", resp.ClientSecret)
	require.NotNil(t, resp.Payment.PaymentIntentID)
	assert.Equal(t, "pi_abc", *resp.Payment.PaymentIntentID)
	assert.Equal(t, models.PaymentMethodPaypal, *resp.Payment.PaymentMethod)
	assert.Equal(t, testNow, resp.Payment.UpdatedAt)
	assert.Equal(t, models.PaymentStatusPending, resp.Payment.Status)
}

func TestCreatePaymentIntent_DefaultCurrency(t *testing.T) {
	f := newFixture(t, &models.Config{})
	p := passenger()
	booking := testBooking(p.UserID)
	payment := testPayment(booking, models.PaymentStatusPending)

	f.repo.EXPECT().GetPassengerBooking(gomock.Any(), booking.ID, p.UserID).Return(booking, nil)
	f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), booking.ID).Return(payment, nil)
	f.provider.EXPECT().CreateIntent(gomock.Any(), int64(4050), "usd", models.PaymentMethodCard).
		Return(&models.PaymentIntent{ID: "pi_1", ClientSecret: "s"}, nil)
	f.repo.EXPECT().SaveIntent(gomock.Any(), payment).Return(nil)

	_, err := f.uc.CreatePaymentIntent(context.Background(), p, models.CreatePaymentIntentRequest{BookingID: booking.ID, PaymentMethod: "card"})
	assert.NoError(t, err)
}

func TestCreatePaymentIntent_InvalidMethod(t *testing.T) {
	f := newFixture(t, &models.Config{})
	_, err := f.uc.CreatePaymentIntent(context.Background(), passenger(), models.CreatePaymentIntentRequest{BookingID: uuid.New(), PaymentMethod: "cash"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCreatePaymentIntent_OtherPassengersBooking(t *testing.T) {
	f := newFixture(t, &models.Config{})
	p := passenger()
	bookingID := uuid.New()
	f.repo.EXPECT().GetPassengerBooking(gomock.Any(), bookingID, p.UserID).Return(nil, apperror.NotFound("Booking not found"))

	_, err := f.uc.CreatePaymentIntent(context.Background(), p, models.CreatePaymentIntentRequest{BookingID: bookingID, PaymentMethod: "card"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreatePaymentIntent_NotPending(t *testing.T) {
	for _, status := range []models.PaymentStatus{models.PaymentStatusCompleted, models.PaymentStatusFailed, models.PaymentStatusRefunded} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t, &models.Config{})
			p := passenger()
			booking := testBooking(p.UserID)
			f.repo.EXPECT().GetPassengerBooking(gomock.Any(), booking.ID, p.UserID).Return(booking, nil)
			f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), booking.ID).Return(testPayment(booking, status), nil)

			_, err := f.uc.CreatePaymentIntent(context.Background(), p, models.CreatePaymentIntentRequest{BookingID: booking.ID, PaymentMethod: "card"})

			assert.ErrorIs(t, err, apperror.ErrInvalidPayment)
			assert.Equal(t, 400, apperror.From(err).StatusCode())
		})
	}
}

func TestCreatePaymentIntent_ProviderError(t *testing.T) {
	f := newFixture(t, &models.Config{})
	p := passenger()
	booking := testBooking(p.UserID)
	f.repo.EXPECT().GetPassengerBooking(gomock.Any(), booking.ID, p.UserID).Return(booking, nil)
	f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), booking.ID).Return(testPayment(booking, models.PaymentStatusPending), nil)
	f.provider.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("processor timeout"))

	_, err := f.uc.CreatePaymentIntent(context.Background(), p, models.CreatePaymentIntentRequest{BookingID: booking.ID, PaymentMethod: "card"})
	assert.ErrorIs(t, err, apperror.ErrOperationFailed)
}

func TestCreatePaymentIntent_LostRace(t *testing.T) {
	f := newFixture(t, &models.Config{})
	p := passenger()
	booking := testBooking(p.UserID)
	f.repo.EXPECT().GetPassengerBooking(gomock.Any(), booking.ID, p.UserID).Return(booking, nil)
	f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), booking.ID).Return(testPayment(booking, models.PaymentStatusPending), nil)
	f.provider.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.PaymentIntent{ID: "pi_1"}, nil)
	f.repo.EXPECT().SaveIntent(gomock.Any(), gomock.Any()).Return(apperror.InvalidPaymentState("Payment has already been processed"))

	_, err := f.uc.CreatePaymentIntent(context.Background(), p, models.CreatePaymentIntentRequest{BookingID: booking.ID, PaymentMethod: "card"})
	assert.ErrorIs(t, err, apperror.ErrInvalidPayment)
}

func TestConfirmPayment_Delegates(t *testing.T) {
	f := newFixture(t, &models.Config{})
	p := passenger()
	bookingID := uuid.New()
	confirmed := &models.Payment{ID: uuid.New(), Status: models.PaymentStatusCompleted}
	f.lifecycle.EXPECT().ConfirmPayment(gomock.Any(), p, bookingID, "pi_1").Return(confirmed, nil)

	got, err := f.uc.ConfirmPayment(context.Background(), p, models.ConfirmPaymentRequest{BookingID: bookingID, PaymentIntentID: "pi_1"})

	require.NoError(t, err)
	assert.Same(t, confirmed, got)
}

func TestConfirmPayment_RequiresBooking(t *testing.T) {
	f := newFixture(t, &models.Config{})
	_, err := f.uc.ConfirmPayment(context.Background(), passenger(), models.ConfirmPaymentRequest{PaymentIntentID: "pi_1"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRefundPayment_Delegates(t *testing.T) {
	f := newFixture(t, &models.Config{})
	p := passenger()
	paymentID := uuid.New()
	f.lifecycle.EXPECT().RefundPayment(gomock.Any(), p, paymentID).Return(nil, apperror.NotRefundable())

	_, err := f.uc.RefundPayment(context.Background(), p, paymentID)
	assert.ErrorIs(t, err, apperror.ErrNotRefundable)

	_, err = f.uc.RefundPayment(context.Background(), p, uuid.Nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestGetPayment(t *testing.T) {
	owner := passenger()
	admin := models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}

	tests := []struct {
		name      string
		principal models.Principal
		wantErr   error
	}{
		{name: "owner", principal: owner},
		{name: "admin", principal: admin},
		{name: "stranger", principal: passenger(), wantErr: apperror.ErrAuthorization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &models.Config{})
			booking := testBooking(owner.UserID)
			payment := testPayment(booking, models.PaymentStatusCompleted)
			f.repo.EXPECT().GetPayment(gomock.Any(), payment.ID).Return(payment, nil)
			f.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

			got, err := f.uc.GetPayment(context.Background(), tt.principal, payment.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Same(t, payment, got)
		})
	}
}

func TestGetPayment_NotFound(t *testing.T) {
	f := newFixture(t, &models.Config{})
	f.repo.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Return(nil, apperror.NotFound("Payment not found"))

	_, err := f.uc.GetPayment(context.Background(), passenger(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
