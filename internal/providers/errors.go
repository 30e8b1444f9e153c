package providers

import (
	"errors"
	"net/http"
)

// Domain errors for the provider registry.
var (
	// ErrNotFound indicates the requested provider does not exist.
	ErrNotFound = errors.New("provider not found")

	// ErrDefaultConflict indicates a concurrent default swap lost the race
	// against the single-default constraint. Retrying succeeds.
	ErrDefaultConflict = errors.New("default provider changed concurrently")

	// ErrImmutableField indicates an attempt to change the category or id
	// of an existing provider.
	ErrImmutableField = errors.New("provider category and id are immutable")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDefaultConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrImmutableField) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
