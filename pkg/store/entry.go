package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is the stored form of a list element.
type Entry[T any] struct {
	// Value is the element itself
	Value T `json:"value"`

	// PushedAt is when the element was appended
	PushedAt time.Time `json:"pushed_at"`
}

// Age returns how long ago the entry was pushed.
func (e Entry[T]) Age() time.Duration {
	return time.Since(e.PushedAt)
}

func encodeEntry[T any](value T, now time.Time) ([]byte, error) {
	data, err := json.Marshal(Entry[T]{Value: value, PushedAt: now})
	if err != nil {
		return nil, fmt.Errorf("marshal entry: %w", err)
	}
	return data, nil
}

func decodeEntry[T any](data []byte) (Entry[T], error) {
	var e Entry[T]
	if err := json.Unmarshal(data, &e); err != nil {
		return e, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	return e, nil
}
