package errors

import (
	"errors"
	"fmt"
)

// Common error types shared by the dashboard client packages
var (
	// Storage errors
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage error")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptyToken   = errors.New("empty token")

	// Transport errors
	ErrTransport       = errors.New("transport error")
	ErrInvalidResponse = errors.New("invalid response")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
