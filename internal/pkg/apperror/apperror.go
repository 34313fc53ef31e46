// Package apperror defines the typed errors returned by the usecases and
// their mapping to HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the transport layer
type Kind string

const (
	KindValidation      Kind = "validation"
	KindAuthorization   Kind = "authorization"
	KindUnauthenticated Kind = "unauthenticated"
	KindConflict        Kind = "conflict"
	KindNotFound        Kind = "not_found"
	KindDuplicate       Kind = "duplicate"
	KindOperationFailed Kind = "operation_failed"
)

// Stable codes for domain conflicts
const (
	CodeRideUnavailable     = "RIDE_UNAVAILABLE"
	CodeInsufficientSeats   = "INSUFFICIENT_SEATS"
	CodeNotModifiable       = "NOT_MODIFIABLE"
	CodeNotCancellable      = "NOT_CANCELLABLE"
	CodeInvalidPaymentState = "INVALID_PAYMENT_STATE"
	CodeNotRefundable       = "NOT_REFUNDABLE"
	CodeAlreadyCompleted    = "ALREADY_COMPLETED"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeAlreadyReviewed     = "ALREADY_REVIEWED"
	CodeRequestInProgress   = "REQUEST_IN_PROGRESS"
)

// OperationFailedMessage is the only message callers see for unexpected failures
const OperationFailedMessage = "Operation failed"

// Error is the typed error carried from usecases to handlers
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind and code, so sentinels compare with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" {
		return e.Kind == t.Kind && e.Code == t.Code
	}
	return e.Kind == t.Kind
}

// StatusCode maps the kind to an HTTP status
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindAuthorization:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels for errors.Is checks
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrAuthorization     = &Error{Kind: KindAuthorization}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrOperationFailed   = &Error{Kind: KindOperationFailed}
	ErrRideUnavailable   = &Error{Kind: KindConflict, Code: CodeRideUnavailable}
	ErrInsufficientSeats = &Error{Kind: KindConflict, Code: CodeInsufficientSeats}
	ErrNotModifiable     = &Error{Kind: KindConflict, Code: CodeNotModifiable}
	ErrNotCancellable    = &Error{Kind: KindConflict, Code: CodeNotCancellable}
	ErrInvalidPayment    = &Error{Kind: KindConflict, Code: CodeInvalidPaymentState}
	ErrNotRefundable     = &Error{Kind: KindConflict, Code: CodeNotRefundable}
	ErrAlreadyCompleted  = &Error{Kind: KindConflict, Code: CodeAlreadyCompleted}
	ErrInvalidTransition = &Error{Kind: KindConflict, Code: CodeInvalidTransition}
	ErrAlreadyReviewed   = &Error{Kind: KindConflict, Code: CodeAlreadyReviewed}
	ErrInProgress        = &Error{Kind: KindDuplicate, Code: CodeRequestInProgress}
)

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a domain conflict with a stable code
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func InProgress(message string) *Error {
	return &Error{Kind: KindDuplicate, Code: CodeRequestInProgress, Message: message}
}

// OperationFailed wraps an unexpected failure. The cause is kept for logging only.
func OperationFailed(err error) *Error {
	return &Error{Kind: KindOperationFailed, Message: OperationFailedMessage, Err: err}
}

func RideUnavailable() *Error {
	return Conflict(CodeRideUnavailable, "Ride is not available for booking")
}

func InsufficientSeats() *Error {
	return Conflict(CodeInsufficientSeats, "Not enough seats available")
}

func NotModifiable(message string) *Error {
	return Conflict(CodeNotModifiable, message)
}

func NotCancellable() *Error {
	return Conflict(CodeNotCancellable, "Booking cannot be cancelled")
}

func InvalidPaymentState(message string) *Error {
	return Conflict(CodeInvalidPaymentState, message)
}

func NotRefundable() *Error {
	return Conflict(CodeNotRefundable, "Payment cannot be refunded")
}

func AlreadyCompleted() *Error {
	return Conflict(CodeAlreadyCompleted, "Ride is already completed")
}

func InvalidTransition(message string) *Error {
	return Conflict(CodeInvalidTransition, message)
}

func AlreadyReviewed() *Error {
	return Conflict(CodeAlreadyReviewed, "You have already reviewed this user for this ride")
}

// From extracts an *Error from a chain. Unknown errors become OperationFailed.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return OperationFailed(err)
}
