package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned for every non 2xx answer of the backend.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %d %s", e.Code, e.Status)
}

func statusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}

func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	code := statusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsClientError reports a 4xx answer; asking again will not help.
func IsClientError(err error) bool {
	code := statusCode(err)
	return code >= 400 && code < 500
}
