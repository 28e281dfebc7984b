package utils

import "errors"

// ErrorRecordNotFound covers both truly missing records and records outside
// the caller's company scope; the HTTP layer maps it to 404 in both cases.
var ErrorRecordNotFound = errors.New("record not found")

// ValidationError marks business-rule failures that the HTTP layer should
// report as 400 rather than 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
