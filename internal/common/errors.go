// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog errors.
	ErrUnknownColor   = errors.New("unknown color")
	ErrInvalidCatalog = errors.New("invalid color catalog")

	// Quoting errors. These signal a broken invariant in whatever built the
	// configuration, not incomplete user input.
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidPanelCount = errors.New("invalid panel count")
	ErrInvalidPriceList  = errors.New("invalid price list")

	// Input errors.
	ErrInvalidInput = errors.New("invalid input")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsHardError reports whether err is a programmer or data error that must not
// be presented as a missing quote.
func IsHardError(err error) bool {
	return errors.Is(err, ErrUnknownColor) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPanelCount) ||
		errors.Is(err, ErrInvalidPriceList)
}
