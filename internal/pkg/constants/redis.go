package constants

// Redis key formats
const (
	// Booking Service
	KeyBookingIdempotency = "booking:idem:%s:%s" // Format: booking:idem:{principal_id}:{idempotency_key}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{principal_or_ip}
)

// Idempotency record states
const (
	IdempotencyInFlight = "in_flight"
)

// Rate limit resources
const (
	RateLimitResourceBookings = "bookings"
)
