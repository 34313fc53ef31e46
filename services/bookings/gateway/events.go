package gateway

import (
	"context"

	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/events"
	"github.com/piresc/hubber/internal/pkg/models"
	"github.com/piresc/hubber/services/bookings"
)

// bookingGW publishes workflow events through the configured transport
type bookingGW struct {
	publisher events.Publisher
}

// NewBookingGW creates a new booking event gateway
func NewBookingGW(publisher events.Publisher) bookings.BookingGW {
	return &bookingGW{
		publisher: publisher,
	}
}

func bookingEvent(b *models.Booking) models.BookingEvent {
	evt := models.BookingEvent{
		BookingID:        b.ID.String(),
		BookingReference: b.BookingReference,
		RideID:           b.RideID.String(),
		PassengerID:      b.PassengerID.String(),
		SeatsBooked:      b.SeatsBooked,
		TotalAmount:      b.TotalAmount,
		Status:           string(b.Status),
		OccurredAt:       models.Now(),
	}
	if b.CancellationReason != nil {
		evt.Reason = *b.CancellationReason
	}
	return evt
}

func paymentEvent(p *models.Payment) models.PaymentEvent {
	evt := models.PaymentEvent{
		PaymentID:            p.ID.String(),
		BookingID:            p.BookingID.String(),
		TransactionReference: p.TransactionReference,
		Amount:               p.Amount,
		Status:               string(p.Status),
		OccurredAt:           models.Now(),
	}
	if p.RefundReason != nil {
		evt.Reason = *p.RefundReason
	}
	return evt
}

func rideEvent(r *models.Ride, affected []*models.Booking) models.RideEvent {
	evt := models.RideEvent{
		RideID:         r.ID.String(),
		DriverID:       r.DriverID.String(),
		Status:         string(r.Status),
		AvailableSeats: r.AvailableSeats,
		OccurredAt:     models.Now(),
	}
	for _, b := range affected {
		evt.BookingIDs = append(evt.BookingIDs, b.ID.String())
	}
	if r.CancellationReason != nil {
		evt.Reason = *r.CancellationReason
	}
	return evt
}

// PublishBookingCreated publishes booking.created
func (g *bookingGW) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	return g.publisher.Publish(ctx, constants.SubjectBookingCreated, bookingEvent(booking))
}

// PublishBookingCancelled publishes booking.cancelled
func (g *bookingGW) PublishBookingCancelled(ctx context.Context, booking *models.Booking) error {
	return g.publisher.Publish(ctx, constants.SubjectBookingCancelled, bookingEvent(booking))
}

// PublishPaymentCompleted publishes payment.completed
func (g *bookingGW) PublishPaymentCompleted(ctx context.Context, payment *models.Payment) error {
	return g.publisher.Publish(ctx, constants.SubjectPaymentCompleted, paymentEvent(payment))
}

// PublishPaymentRefunded publishes payment.refunded
func (g *bookingGW) PublishPaymentRefunded(ctx context.Context, payment *models.Payment) error {
	return g.publisher.Publish(ctx, constants.SubjectPaymentRefunded, paymentEvent(payment))
}

// PublishRideCompleted publishes ride.completed with the bookings it completed
func (g *bookingGW) PublishRideCompleted(ctx context.Context, ride *models.Ride, affected []*models.Booking) error {
	return g.publisher.Publish(ctx, constants.SubjectRideCompleted, rideEvent(ride, affected))
}

// PublishRideCancelled publishes ride.cancelled with the bookings it cancelled
func (g *bookingGW) PublishRideCancelled(ctx context.Context, ride *models.Ride, affected []*models.Booking) error {
	return g.publisher.Publish(ctx, constants.SubjectRideCancelled, rideEvent(ride, affected))
}
