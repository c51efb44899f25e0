package api

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the settings backend. Message
// carries the server's structured error payload when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status=%d", e.StatusCode)
}

// ServerMessage extracts the backend-provided message from an error
// chain, or returns "" when the failure carried none (network errors,
// malformed responses).
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
