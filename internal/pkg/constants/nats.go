package constants

// Event subjects, also used as AMQP routing keys
const (
	// Ride events
	SubjectRideCreated   = "ride.created"
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"

	// Booking events
	SubjectBookingCreated   = "booking.created"
	SubjectBookingCancelled = "booking.cancelled"

	// Payment events
	SubjectPaymentCompleted = "payment.completed"
	SubjectPaymentRefunded  = "payment.refunded"

	// Review events
	SubjectReviewCreated = "review.created"
)

// Events drivers
const (
	EventsDriverNATS = "nats"
	EventsDriverAMQP = "amqp"
	EventsDriverNone = "none"
)
