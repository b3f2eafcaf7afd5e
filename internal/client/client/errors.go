package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/blogapi/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// newAPIError classifies a failed response for the given endpoint path.
func newAPIError(path string, status int, message string) *APIError {
	e := &APIError{StatusCode: status, Message: message}

	switch {
	case status == http.StatusUnauthorized && path == loginPath:
		e.kind = common.ErrInvalidCredentials
	case status == http.StatusUnauthorized:
		e.kind = ErrUnauthorized
	case status == http.StatusBadRequest && path == registerPath && message == msgUserExists:
		e.kind = common.ErrDuplicateEmail
	case status == http.StatusBadRequest && path == blogsPath && message == msgMissingFields:
		e.kind = common.ErrMissingRequiredField
	case status >= http.StatusInternalServerError:
		e.kind = common.ErrStorage
	}

	return e
}
