package datastructures

import "strings"

// PrefixMap wraps a map so that looking up a key carrying Prefix returns the
// transformed value of the unprefixed key. It is used to let templates ask
// for either the raw or the quoted form of a value, e.g. "name" and
// "qn_name".
type PrefixMap[V any] struct {
	data      map[string]V
	transform func(V) V
	prefix    string
}

// NewPrefixMap creates a PrefixMap over a copy of data.
func NewPrefixMap[V any](data map[string]V, transform func(V) V, prefix string) *PrefixMap[V] {
	copied := make(map[string]V, len(data))
	for k, v := range data {
		copied[k] = v
	}
	return &PrefixMap[V]{data: copied, transform: transform, prefix: prefix}
}

// Get returns the value for key. If key starts with the prefix the prefix is
// stripped and the transform is applied to the value found. An empty prefix
// matches every key.
func (m *PrefixMap[V]) Get(key string) (V, bool) {
	stripped, hasPrefix := strings.CutPrefix(key, m.prefix)
	v, ok := m.data[stripped]
	if !ok {
		return v, false
	}
	if hasPrefix {
		return m.transform(v), true
	}
	return v, true
}

// Len returns the number of entries.
func (m *PrefixMap[V]) Len() int {
	return len(m.data)
}
