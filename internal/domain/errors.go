package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrSimulatedFailure = errors.New("simulated async failure")
)

// HTTPStatusError is returned when a remote endpoint answers outside the 2xx range.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status = %d", e.StatusCode)
}
