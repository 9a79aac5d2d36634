package datastructures

import (
	"container/list"
	"fmt"
	"iter"
	"strings"
)

// OrderedSet is a set that remembers insertion order. Create sets with
// NewOrderedSet; the zero value is not usable.
type OrderedSet[T comparable] struct {
	order *list.List
	index map[T]*list.Element
}

// NewOrderedSet creates a set containing items. Duplicates keep their first
// position.
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		order: list.New(),
		index: make(map[T]*list.Element, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item at the end unless it is already present.
func (s *OrderedSet[T]) Add(item T) {
	if _, ok := s.index[item]; ok {
		return
	}
	s.index[item] = s.order.PushBack(item)
}

// Remove deletes item, returning a *KeyError if it is absent.
func (s *OrderedSet[T]) Remove(item T) error {
	el, ok := s.index[item]
	if !ok {
		return &KeyError{Key: item}
	}
	s.order.Remove(el)
	delete(s.index, item)
	return nil
}

// Discard deletes item if present.
func (s *OrderedSet[T]) Discard(item T) {
	_ = s.Remove(item)
}

// Contains reports whether item is in the set.
func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of items.
func (s *OrderedSet[T]) Len() int {
	return len(s.index)
}

// IsEmpty reports whether the set has no items.
func (s *OrderedSet[T]) IsEmpty() bool {
	return len(s.index) == 0
}

// All yields items in insertion order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := s.order.Front(); el != nil; el = el.Next() {
			if !yield(el.Value.(T)) {
				return
			}
		}
	}
}

// Backward yields items in reverse insertion order.
func (s *OrderedSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := s.order.Back(); el != nil; el = el.Prev() {
			if !yield(el.Value.(T)) {
				return
			}
		}
	}
}

// Items returns the items in insertion order.
func (s *OrderedSet[T]) Items() []T {
	out := make([]T, 0, s.Len())
	for item := range s.All() {
		out = append(out, item)
	}
	return out
}

// Slice returns the items at positions [start, end), so a set can be
// paginated directly.
func (s *OrderedSet[T]) Slice(start, end int) []T {
	out := make([]T, 0, max(0, end-start))
	i := 0
	for el := s.order.Front(); el != nil && i < end; el = el.Next() {
		if i >= start {
			out = append(out, el.Value.(T))
		}
		i++
	}
	return out
}

// Ordered always reports true: iteration order is insertion order.
func (s *OrderedSet[T]) Ordered() bool {
	return true
}

// String implements fmt.Stringer, e.g. OrderedSet([1 2 3]).
func (s *OrderedSet[T]) String() string {
	if s.IsEmpty() {
		return "OrderedSet()"
	}
	parts := make([]string, 0, s.Len())
	for item := range s.All() {
		parts = append(parts, fmt.Sprint(item))
	}
	return "OrderedSet([" + strings.Join(parts, " ") + "])"
}
