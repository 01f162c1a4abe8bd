// Package apperr defines typed application errors and their HTTP mapping.
package apperr

import (
	"errors"
	"net/http"
	"time"
)

// Kind classifies failures for consistent HTTP mapping and user messaging.
type Kind string

const (
	KindServer      Kind = "server"
	KindValidation  Kind = "validation"
	KindRateLimited Kind = "rate_limited"
	KindNetwork     Kind = "network"
	KindNotFound    Kind = "not_found"
)

// Error is a typed application failure. Message is safe to show to visitors.
type Error struct {
	Kind       Kind
	Message    string
	Fields     map[string]string
	RetryAfter time.Duration
	// Mailto is a prefilled mailto: link offered when delivery failed for network reasons.
	Mailto string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a typed Error with the default message for kind.
func E(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: DefaultMessage(kind), Err: err}
}

// Validation builds a validation Error carrying per-field messages.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: DefaultMessage(KindValidation), Fields: fields}
}

// RateLimited builds a rate_limited Error.
func RateLimited(retryAfter time.Duration) *Error {
	return &Error{Kind: KindRateLimited, Message: DefaultMessage(KindRateLimited), RetryAfter: retryAfter}
}

// KindOf returns the kind of err, or KindServer for untyped errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServer
}

// As extracts a typed Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindNetwork:
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Code is the machine-readable error code used in API payloads.
func Code(kind Kind) string {
	switch kind {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindRateLimited:
		return "RATE_LIMITED"
	case KindNetwork:
		return "DELIVERY_UNAVAILABLE"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// DefaultMessage is the visitor-facing message for kind.
func DefaultMessage(kind Kind) string {
	switch kind {
	case KindValidation:
		return "Please check the highlighted fields and try again."
	case KindRateLimited:
		return "You've sent several messages recently. Please try again later or give us a call."
	case KindNetwork:
		return "We couldn't reach our mail service. You can email us directly instead."
	case KindNotFound:
		return "We couldn't find that page."
	default:
		return "Something went wrong sending your message. Please try again or call us."
	}
}
