package api

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is the distinguished signal for a 401 response. The
// transport never tears the session down itself; callers detect this sentinel
// with errors.Is and hand it to the session coordinator.
var ErrUnauthenticated = errors.New("unauthenticated")

// Error is a non-2xx response decoded from the backend's error envelope.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// Is makes a 401 *Error match ErrUnauthenticated.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthenticated && e.StatusCode == 401
}

// errorEnvelope matches the backend's error body, which uses either an
// "error" or a "message" field depending on the handler.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
