package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrIntegrationFailure = errors.New("integration failed to converge")
	ErrInsufficientData   = errors.New("insufficient trajectory data")
	ErrInvalidInput       = errors.New("invalid input")
)

// ValidationError reports a profile or scenario field outside its documented
// bound. The offending field is always named; values are never silently
// clamped.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// IntegrationError wraps a solver failure with the time it occurred at.
type IntegrationError struct {
	TimeHours float64
	Reason    string
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integration failed at t=%.3fh: %s", e.TimeHours, e.Reason)
}

func (e *IntegrationError) Unwrap() error {
	return ErrIntegrationFailure
}
