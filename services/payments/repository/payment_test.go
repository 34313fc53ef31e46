package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/hubber/internal/pkg/apperror"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var (
	testNow     = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	bookingCols = []string{"id", "booking_reference", "passenger_id", "ride_id", "seats_booked", "total_amount",
		"status", "special_requests", "cancellation_reason", "created_at", "updated_at"}
	paymentCols = []string{"id", "booking_id", "transaction_reference", "amount", "status", "payment_method",
		"payment_intent_id", "refund_reason", "created_at", "updated_at"}
)

func TestGetPassengerBooking(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)
	bookingID, passengerID, rideID := uuid.New(), uuid.New(), uuid.New()

	rows := sqlmock.NewRows(bookingCols).AddRow(
		bookingID.String(), "BK1A2B3C4D", passengerID.String(), rideID.String(), 2, 40.0,
		"pending", nil, nil, testNow, testNow)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1 AND passenger_id = $2")).
		WithArgs(bookingID, passengerID).
		WillReturnRows(rows)

	// Act
	booking, err := repo.GetPassengerBooking(context.Background(), bookingID, passengerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
	assert.Equal(t, passengerID, booking.PassengerID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Nil(t, booking.SpecialRequests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPassengerBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1 AND passenger_id = $2")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPassengerBooking(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentByBooking(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)
	paymentID, bookingID := uuid.New(), uuid.New()

	rows := sqlmock.NewRows(paymentCols).AddRow(
		paymentID.String(), bookingID.String(), "TXN0011223344", 40.0, "completed", "card",
		"pi_abc", nil, testNow, testNow)
	mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE booking_id = $1")).
		WithArgs(bookingID).
		WillReturnRows(rows)

	payment, err := repo.GetPaymentByBooking(context.Background(), bookingID)

	require.NoError(t, err)
	assert.Equal(t, paymentID, payment.ID)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	require.NotNil(t, payment.PaymentMethod)
	assert.Equal(t, models.PaymentMethodCard, *payment.PaymentMethod)
	require.NotNil(t, payment.PaymentIntentID)
	assert.Equal(t, "pi_abc", *payment.PaymentIntentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPayment_Errors(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		notFound bool
	}{
		{name: "no rows", dbErr: sql.ErrNoRows, notFound: true},
		{name: "driver error", dbErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPaymentRepository(&models.Config{}, db)
			mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE id = $1")).WillReturnError(tt.dbErr)

			_, err := repo.GetPayment(context.Background(), uuid.New())

			require.Error(t, err)
			assert.Equal(t, tt.notFound, errors.Is(err, apperror.ErrNotFound))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveIntent(t *testing.T) {
	method := models.PaymentMethodCard
	intentID := "pi_abc"
	payment := &models.Payment{
		ID:              uuid.New(),
		PaymentMethod:   &method,
		PaymentIntentID: &intentID,
		UpdatedAt:       testNow,
	}

	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "pending payment", rows: 1},
		{name: "already processed", rows: 0, wantErr: apperror.ErrInvalidPayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPaymentRepository(&models.Config{}, db)
			mock.ExpectExec(regexp.QuoteMeta("UPDATE payments SET payment_method = $1")).
				WithArgs("card", "pi_abc", testNow, payment.ID, "pending").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			err := repo.SaveIntent(context.Background(), payment)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
