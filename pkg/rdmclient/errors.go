package rdmclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Local form validation errors. These fire before any network call, the
// same checks the mobile app runs on its sign-up form.
var (
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("Passwords do not match")
)

// APIError is an error response from the server: the machine-readable code
// plus the human-readable message, surfaced verbatim.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error returns the server's message verbatim so callers can show it to the
// user directly, with a generic fallback when the server sent none.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is a 403 from the server.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}
