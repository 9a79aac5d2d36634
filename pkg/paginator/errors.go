package paginator

import (
	"errors"
)

// Error kinds returned by ValidateNumber, Page and related methods.
var (
	// ErrInvalidPage is the category matched by every page validation error.
	ErrInvalidPage = errors.New("invalid page")

	// ErrPageNotAnInteger is returned when the input is not a whole number.
	ErrPageNotAnInteger = errors.New("page not an integer")

	// ErrEmptyPage is returned when the page number is outside [1, NumPages].
	ErrEmptyPage = errors.New("empty page")

	// ErrInvalidConfig is returned by New for a non-positive page size or
	// negative orphans.
	ErrInvalidConfig = errors.New("invalid paginator config")
)

// PageError is a page validation failure carrying a caller-facing message.
type PageError struct {
	// Kind is ErrPageNotAnInteger or ErrEmptyPage.
	Kind error

	// Message comes from the paginator's Messages table.
	Message string

	// Value is the rejected input.
	Value any
}

// Error returns the configured message so it can be shown to users as is.
func (e *PageError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the ErrInvalidPage category.
func (e *PageError) Unwrap() []error {
	return []error{e.Kind, ErrInvalidPage}
}

func notAnInteger(msg string, value any) error {
	return &PageError{Kind: ErrPageNotAnInteger, Message: msg, Value: value}
}

func emptyPage(msg string, value any) error {
	return &PageError{Kind: ErrEmptyPage, Message: msg, Value: value}
}
