package restapi

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrNotJSON = errors.New("upstream response is not JSON")

// APIError represents a non-2xx response from the payroll REST API
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API call failed: %d %s - %s", e.StatusCode, e.Status, e.Body)
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsClientError reports whether err is an upstream 4xx
func IsClientError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}
