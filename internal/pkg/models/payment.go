package models

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the status of a payment record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentMethod represents the instrument chosen when an intent is created
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

const (
	// TransactionReferencePrefix prefixes every payment transaction reference
	TransactionReferencePrefix = "TXN"
	// RefundReasonUserRequest is stored on explicit refund requests
	RefundReasonUserRequest = "Refund requested by user"
	// RefundReasonRideCancelled is stored when a driver cancels the ride
	RefundReasonRideCancelled = "Ride cancelled by driver"
)

var (
	// ErrInvalidPaymentState is returned for transitions the payment state machine forbids
	ErrInvalidPaymentState = errors.New("invalid payment state")
	// ErrPaymentAlreadyProcessed is returned when a non-pending payment is confirmed again
	ErrPaymentAlreadyProcessed = errors.New("payment has already been processed")
	// ErrInvalidPaymentIntent is returned when the intent is missing or does not match
	ErrInvalidPaymentIntent = errors.New("invalid payment intent")
)

// Payment is the payment record owned by exactly one booking
type Payment struct {
	ID                   uuid.UUID      `json:"id" db:"id"`
	BookingID            uuid.UUID      `json:"booking_id" db:"booking_id"`
	TransactionReference string         `json:"transaction_reference" db:"transaction_reference"`
	Amount               float64        `json:"amount" db:"amount"`
	Status               PaymentStatus  `json:"status" db:"status"`
	PaymentMethod        *PaymentMethod `json:"payment_method,omitempty" db:"payment_method"`
	PaymentIntentID      *string        `json:"payment_intent_id,omitempty" db:"payment_intent_id"`
	RefundReason         *string        `json:"refund_reason,omitempty" db:"refund_reason"`
	CreatedAt            time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at" db:"updated_at"`
}

// NewPendingPayment creates the pending payment record for a freshly created booking
func NewPendingPayment(booking *Booking, reference string, now time.Time) *Payment {
	return &Payment{
		ID:                   uuid.New(),
		BookingID:            booking.ID,
		TransactionReference: reference,
		Amount:               booking.TotalAmount,
		Status:               PaymentStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// AmountInCents converts the amount for the payment provider
func (p *Payment) AmountInCents() int64 {
	return int64(math.Round(p.Amount * 100))
}

// AttachIntent records the provider intent on a pending payment
func (p *Payment) AttachIntent(method PaymentMethod, intentID string) error {
	if p.Status != PaymentStatusPending {
		return ErrPaymentAlreadyProcessed
	}
	p.PaymentMethod = &method
	p.PaymentIntentID = &intentID
	return nil
}

// MarkCompleted confirms a pending payment whose intent matches intentID
func (p *Payment) MarkCompleted(intentID string) error {
	if p.Status != PaymentStatusPending {
		return ErrPaymentAlreadyProcessed
	}
	if p.PaymentIntentID == nil || intentID == "" || *p.PaymentIntentID != intentID {
		return ErrInvalidPaymentIntent
	}
	p.Status = PaymentStatusCompleted
	return nil
}

// MarkRefunded refunds a completed payment
func (p *Payment) MarkRefunded(reason string) error {
	if p.Status != PaymentStatusCompleted {
		return ErrInvalidPaymentState
	}
	p.Status = PaymentStatusRefunded
	p.RefundReason = &reason
	return nil
}

// MarkFailed closes a pending payment so it can never be confirmed
func (p *Payment) MarkFailed() error {
	if p.Status != PaymentStatusPending {
		return ErrInvalidPaymentState
	}
	p.Status = PaymentStatusFailed
	return nil
}

// IsRefundable reports whether a refund may be requested at the given instant
func (p *Payment) IsRefundable(booking *Booking, ride *Ride, now time.Time, window time.Duration) bool {
	return p.Status == PaymentStatusCompleted && booking.IsCancellable(ride, now, window)
}

// IsValidPaymentMethod checks a raw payment method string
func IsValidPaymentMethod(s string) bool {
	return PaymentMethod(s) == PaymentMethodCard || PaymentMethod(s) == PaymentMethodPaypal
}

// CreatePaymentIntentRequest is the payload for intent creation
type CreatePaymentIntentRequest struct {
	BookingID     uuid.UUID `json:"booking_id"`
	PaymentMethod string    `json:"payment_method"`
}

// ConfirmPaymentRequest is the payload for payment confirmation
type ConfirmPaymentRequest struct {
	BookingID       uuid.UUID `json:"booking_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
}

// RefundPaymentRequest is the payload for a refund request
type RefundPaymentRequest struct {
	PaymentID uuid.UUID `json:"payment_id"`
}

// PaymentIntent is what the provider hands back for a new intent
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	AmountCents  int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// PaymentIntentResponse is returned to the client after intent creation
type PaymentIntentResponse struct {
	ClientSecret string   `json:"client_secret"`
	Payment      *Payment `json:"payment"`
}

// PaymentEvent is the payload published for payment lifecycle events
type PaymentEvent struct {
	PaymentID            string    `json:"payment_id"`
	BookingID            string    `json:"booking_id"`
	TransactionReference string    `json:"transaction_reference"`
	Amount               float64   `json:"amount"`
	Status               string    `json:"status"`
	Reason               string    `json:"reason,omitempty"`
	OccurredAt           time.Time `json:"occurred_at"`
}
