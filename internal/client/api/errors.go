package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the request was rejected even after a token
	// refresh attempt.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-2xx response from the API, carrying the server's envelope
// message and the HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Unwrap maps well-known statuses onto sentinel errors so callers can branch
// with errors.Is.
func (e *Error) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return nil
}
