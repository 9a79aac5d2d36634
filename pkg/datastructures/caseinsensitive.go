package datastructures

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// ErrEmptyKey is returned when building a CaseInsensitiveMap from a pair
// without a key.
var ErrEmptyKey = errors.New("case-insensitive map keys must be non-empty")

type ciEntry[V any] struct {
	key   string
	value V
}

// CaseInsensitiveMap is an immutable string-keyed map whose lookups ignore
// case while iteration returns the keys as originally given. Keys are
// compared with Unicode case folding.
type CaseInsensitiveMap[V any] struct {
	order []string
	store map[string]ciEntry[V]
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// NewCaseInsensitiveMap builds a map from data. Keys differing only in case
// collapse to one entry; which one wins is unspecified since map iteration
// order is random. Use NewCaseInsensitiveMapFromPairs for a defined order.
func NewCaseInsensitiveMap[V any](data map[string]V) *CaseInsensitiveMap[V] {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := &CaseInsensitiveMap[V]{store: make(map[string]ciEntry[V], len(data))}
	for _, k := range keys {
		m.put(k, data[k])
	}
	return m
}

// NewCaseInsensitiveMapFromPairs builds a map from ordered pairs. A later pair
// replaces an earlier one with the same folded key but keeps its position.
func NewCaseInsensitiveMapFromPairs[V any](pairs ...Pair[V]) (*CaseInsensitiveMap[V], error) {
	m := &CaseInsensitiveMap[V]{store: make(map[string]ciEntry[V], len(pairs))}
	for i, p := range pairs {
		if p.Key == "" {
			return nil, fmt.Errorf("pair #%d: %w", i, ErrEmptyKey)
		}
		m.put(p.Key, p.Value)
	}
	return m, nil
}

func (m *CaseInsensitiveMap[V]) put(key string, value V) {
	folded := fold(key)
	if _, ok := m.store[folded]; !ok {
		m.order = append(m.order, folded)
	}
	m.store[folded] = ciEntry[V]{key: key, value: value}
}

// Get returns the value stored under any casing of key.
func (m *CaseInsensitiveMap[V]) Get(key string) (V, bool) {
	e, ok := m.store[fold(key)]
	return e.value, ok
}

// Len returns the number of entries.
func (m *CaseInsensitiveMap[V]) Len() int {
	return len(m.order)
}

// Keys returns the original keys in insertion order.
func (m *CaseInsensitiveMap[V]) Keys() []string {
	out := make([]string, 0, len(m.order))
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

// All yields original keys with their values in insertion order.
func (m *CaseInsensitiveMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, folded := range m.order {
			e := m.store[folded]
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Equal reports whether other holds the same entries, ignoring key case.
func (m *CaseInsensitiveMap[V]) Equal(other map[string]V) bool {
	return m.EqualMap(NewCaseInsensitiveMap(other))
}

// EqualMap reports whether both maps hold the same entries, ignoring key case.
func (m *CaseInsensitiveMap[V]) EqualMap(other *CaseInsensitiveMap[V]) bool {
	if m.Len() != other.Len() {
		return false
	}
	for folded, e := range m.store {
		o, ok := other.store[folded]
		if !ok || !reflect.DeepEqual(e.value, o.value) {
			return false
		}
	}
	return true
}

// Copy returns m itself; the map is immutable.
func (m *CaseInsensitiveMap[V]) Copy() *CaseInsensitiveMap[V] {
	return m
}

// String implements fmt.Stringer.
func (m *CaseInsensitiveMap[V]) String() string {
	parts := make([]string, 0, m.Len())
	for k, v := range m.All() {
		parts = append(parts, fmt.Sprintf("%s: %v", k, v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
