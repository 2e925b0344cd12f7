package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage      = errors.New("empty message")
	ErrRequestInFlight   = errors.New("request already in flight")
	ErrMalformedResponse = errors.New("malformed backend response")
	ErrUserNotFound      = errors.New("user not found")
	ErrBackendUnhealthy  = errors.New("intelligence backend unhealthy")
)

// StatusError reports a non-2xx reply from the intelligence backend.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}
