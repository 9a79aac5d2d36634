package datastructures

import (
	"iter"
	"slices"
)

const defaultImmutableWarning = "ImmutableList object is immutable."

// ImmutableList is a read-only list. Its mutating methods exist so it can
// stand in where callers expect a list, and they always fail with an
// *ImmutableError carrying the list's warning.
type ImmutableList[T any] struct {
	items   []T
	warning string
}

// NewImmutableList copies items into an immutable list.
func NewImmutableList[T any](items ...T) ImmutableList[T] {
	return ImmutableList[T]{items: slices.Clone(items), warning: defaultImmutableWarning}
}

// WithWarning returns the list with a custom failure message.
func (l ImmutableList[T]) WithWarning(warning string) ImmutableList[T] {
	l.warning = warning
	return l
}

// Warning returns the message used for mutation attempts.
func (l ImmutableList[T]) Warning() string {
	if l.warning == "" {
		return defaultImmutableWarning
	}
	return l.warning
}

// Len returns the number of items.
func (l ImmutableList[T]) Len() int {
	return len(l.items)
}

// At returns the i-th item; it panics when i is out of range.
func (l ImmutableList[T]) At(i int) T {
	return l.items[i]
}

// Slice returns a copy of the items in [start, end).
func (l ImmutableList[T]) Slice(start, end int) []T {
	return slices.Clone(l.items[start:end])
}

// Items returns a copy of all items.
func (l ImmutableList[T]) Items() []T {
	return slices.Clone(l.items)
}

// All yields the items with their index.
func (l ImmutableList[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

func (l ImmutableList[T]) complain() error {
	return &ImmutableError{Warning: l.Warning()}
}

// Append always fails.
func (l ImmutableList[T]) Append(...T) error { return l.complain() }

// Insert always fails.
func (l ImmutableList[T]) Insert(int, ...T) error { return l.complain() }

// Set always fails.
func (l ImmutableList[T]) Set(int, T) error { return l.complain() }

// Delete always fails.
func (l ImmutableList[T]) Delete(int, int) error { return l.complain() }

// Pop always fails.
func (l ImmutableList[T]) Pop() (T, error) {
	var zero T
	return zero, l.complain()
}

// Sort always fails.
func (l ImmutableList[T]) Sort(func(a, b T) int) error { return l.complain() }

// Reverse always fails.
func (l ImmutableList[T]) Reverse() error { return l.complain() }
