// Package validate contains the structured rejection returned for invalid user input.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrValidation is the sentinel every validation Error unwraps to.
var ErrValidation = errors.New("validation failed")

// Kind classifies a validation failure.
type Kind string

const (
	KindRequired   Kind = "required"
	KindTooLong    Kind = "too_long"
	KindOutOfRange Kind = "out_of_range"
	KindInvalid    Kind = "invalid"
	KindDuplicate  Kind = "duplicate"
)

// Error is a structured rejection of user input. No state is mutated
// when an operation returns an Error.
type Error struct {
	Kind    Kind   `json:"kind" example:"too_long"`
	Field   string `json:"field" example:"description"`
	Message string `json:"message" example:"description must not be longer than 200 characters"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

// New returns a validation error.
func New(kind Kind, field, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Text verifies that value is set and at most max characters long.
// Length is counted in runes.
func Text(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return New(KindRequired, field, "%s must not be empty", field)
	}

	if utf8.RuneCountInString(value) > max {
		return New(KindTooLong, field, "%s must not be longer than %d characters", field, max)
	}

	return nil
}

// As returns the validation error contained in err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
