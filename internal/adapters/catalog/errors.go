package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("catalog: not found")
	ErrUnauthorized = errors.New("catalog: unauthorized")
	ErrForbidden    = errors.New("catalog: forbidden")
)

// NetworkError means no response was received.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("catalog: network error on %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a response with a non-success status or a success:false body.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog: status %d", e.Status)
	}
	return fmt.Sprintf("catalog: status %d: %s", e.Status, e.Message)
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

// ConfigurationError means the request could not be built at all.
type ConfigurationError struct{ Err error }

func (e *ConfigurationError) Error() string {
	return "catalog: invalid request configuration: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
