package gemini

import (
	"errors"
	"fmt"
)

type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	if e.status != 0 {
		return fmt.Sprintf("Gemini API error (status %d): %s", e.status, e.message)
	}
	return fmt.Sprintf("Gemini API error: %s", e.message)
}

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

type emptyError struct{}

func (e *emptyError) Error() string {
	return "empty response: no candidate text returned"
}

// IsAuthError checks if an error is or wraps an authentication error.
func IsAuthError(err error) bool {
	var target *authError
	return errors.As(err, &target)
}

// IsAPIError checks if an error is or wraps an upstream API error.
func IsAPIError(err error) bool {
	var target *apiError
	return errors.As(err, &target)
}

// IsEmptyResponse checks if an error indicates no extractable text.
func IsEmptyResponse(err error) bool {
	var target *emptyError
	return errors.As(err, &target)
}
