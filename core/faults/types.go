package faults

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies a fatal error.
type ErrorCategory string

const (
	// ConfigurationError means the invocation was rejected before any network call.
	ConfigurationError ErrorCategory = "ConfigurationError"
	// DecodeError means a response or request payload was not valid JSON.
	DecodeError ErrorCategory = "DecodeError"
	// APIError means the API answered with a non-2xx, non-404 status.
	APIError ErrorCategory = "ApiError"
	// TransportError means the request never produced an HTTP response.
	TransportError ErrorCategory = "TransportError"
	// ConflictError means another process holds the resource.
	ConflictError ErrorCategory = "ConflictError"
)

// ErrNotFound is returned by the transport for 404 responses.
var ErrNotFound = errors.New("resource not found")

// TypedError wraps a cause with a category and a human readable message.
type TypedError struct {
	Category ErrorCategory
	Message  string
	Cause    error
}

func (e *TypedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" && e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Category)
}

func (e *TypedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewTypedError builds a TypedError.
func NewTypedError(category ErrorCategory, message string, cause error) *TypedError {
	return &TypedError{
		Category: category,
		Message:  message,
		Cause:    cause,
	}
}

// Configuration returns a ConfigurationError with a formatted message.
func Configuration(format string, args ...any) error {
	return NewTypedError(ConfigurationError, fmt.Sprintf(format, args...), nil)
}

// Decode wraps a JSON parse failure.
func Decode(message string, cause error) error {
	return NewTypedError(DecodeError, message, cause)
}

// Transport wraps a network level failure.
func Transport(message string, cause error) error {
	return NewTypedError(TransportError, message, cause)
}

// IsCategory reports whether err, or anything it wraps, is a TypedError of category.
func IsCategory(err error, category ErrorCategory) bool {
	if err == nil {
		return false
	}

	var typedErr *TypedError
	if !errors.As(err, &typedErr) {
		return false
	}
	return typedErr.Category == category
}

// Details is the HTTP failure attached to an ApiError category.
type Details struct {
	URL    string
	Status int
	Reason string
	// Message is the "error" field of a JSON error body, when one was returned.
	Message string
}

func (d *Details) Error() string {
	msg := fmt.Sprintf("unable to complete API request. URL: %s, Status: %d, Reason: %s", d.URL, d.Status, d.Reason)
	if d.Message != "" {
		msg += ", Error: " + d.Message
	}
	return msg
}

// NewAPIError builds an ApiError category error around the HTTP details.
func NewAPIError(url string, status int, reason, message string) error {
	return NewTypedError(APIError, "", &Details{
		URL:     url,
		Status:  status,
		Reason:  reason,
		Message: message,
	})
}
