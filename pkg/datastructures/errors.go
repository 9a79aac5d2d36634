package datastructures

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every *KeyError.
var ErrKeyNotFound = errors.New("key not found")

// KeyError reports a missing key or set member.
type KeyError struct {
	Key any
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

// Unwrap implements error unwrapping for errors.Is.
func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}

// ErrImmutable is matched by every *ImmutableError.
var ErrImmutable = errors.New("immutable")

// ImmutableError is returned by every mutating method of ImmutableList.
type ImmutableError struct {
	Warning string
}

// Error implements the error interface.
func (e *ImmutableError) Error() string {
	return e.Warning
}

// Unwrap implements error unwrapping for errors.Is.
func (e *ImmutableError) Unwrap() error {
	return ErrImmutable
}
