package templates

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates the requested template category is not registered.
var ErrNotFound = errors.New("template not found")

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
