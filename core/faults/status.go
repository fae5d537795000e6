package faults

import (
	"errors"
	"net/http"
)

// CategoryOf returns the category of the outermost TypedError in err's chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var typedErr *TypedError
	if !errors.As(err, &typedErr) {
		return "", false
	}
	return typedErr.Category, true
}

// HTTPStatus maps err to the status an HTTP surface should answer with.
func HTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	category, ok := CategoryOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch category {
	case ConfigurationError, DecodeError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case APIError, TransportError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
