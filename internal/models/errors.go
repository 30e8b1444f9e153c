package models

import (
	"errors"
	"net/http"
)

// Domain errors for the model registry.
var (
	// ErrNotFound indicates the requested model does not exist.
	ErrNotFound = errors.New("model not found")

	// ErrProviderNotFound indicates the owning provider does not exist.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrDefaultConflict indicates a concurrent default swap lost the race
	// against the per-provider single-default constraint.
	ErrDefaultConflict = errors.New("default model changed concurrently")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrProviderNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDefaultConflict) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
