package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTransient marks network-level failures (timeouts, refused connections).
// They never invalidate a stored credential.
var ErrTransient = errors.New("backend unreachable")

// APIError is a non-2xx verdict from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// newAPIError drains the error body, accepting either {"message": ...} or
// {"error": ...} shapes.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}

// IsUnauthorized reports a 401 verdict.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsForbidden reports a 403 verdict.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}

// IsAuthError reports a 401 or 403 verdict. Either one invalidates the stored
// credential during the silent session check.
func IsAuthError(err error) bool {
	return IsUnauthorized(err) || IsForbidden(err)
}

// IsNotFound reports a 404 verdict, e.g. a product id from a stale link.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsTransient reports a network-level failure rather than a backend verdict.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// UserMessage extracts a message suitable for display, with a generic
// fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
