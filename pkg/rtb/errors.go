package rtb

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrEndpointRequired   = errors.New("API endpoint is required")
	ErrParentRequired     = errors.New("parent resource name is required")
	ErrNameRequired       = errors.New("resource name is required")
	ErrNamesRequired      = errors.New("at least one resource name is required")
	ErrUpdateMaskRequired = errors.New("update mask is required")
	ErrNoMoreItems        = errors.New("no more items")
	ErrInvalidListParams  = errors.New("invalid list parameters")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// StatusCode returns the HTTP status carried by an API error, or 0.
func StatusCode(err error) int {
	apiErr := &googleapi.Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	return 0
}

func hasStatus(err error, code int) bool {
	return StatusCode(err) == code
}
