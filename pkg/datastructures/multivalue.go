package datastructures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"net/url"
	"slices"
	"sort"
)

// MultiValueMap maps string keys to lists of values, like query strings and
// form data. Plain lookups return the last value for a key; the List methods
// expose every value. Keys keep their insertion order.
//
// The zero value is an empty map ready to use.
type MultiValueMap[V any] struct {
	keys  []string
	lists map[string][]V
}

// NewMultiValueMap creates a map from key to value-list pairs.
func NewMultiValueMap[V any](lists map[string][]V) *MultiValueMap[V] {
	m := &MultiValueMap[V]{}
	keys := make([]string, 0, len(lists))
	for k := range lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m.SetList(k, lists[k])
	}
	return m
}

// FromValues copies url.Values into a map. Keys are inserted in sorted order.
func FromValues(values url.Values) *MultiValueMap[string] {
	return NewMultiValueMap(map[string][]string(values))
}

// ToValues copies a string map into url.Values.
func ToValues(m *MultiValueMap[string]) url.Values {
	out := make(url.Values, m.Len())
	for k, list := range m.Lists() {
		out[k] = slices.Clone(list)
	}
	return out
}

func (m *MultiValueMap[V]) init() {
	if m.lists == nil {
		m.lists = make(map[string][]V)
	}
}

// Get returns the last value for key. It returns a *KeyError if key is
// missing and the zero value if the key holds an empty list.
func (m *MultiValueMap[V]) Get(key string) (V, error) {
	var zero V
	list, ok := m.lists[key]
	if !ok {
		return zero, &KeyError{Key: key}
	}
	if len(list) == 0 {
		return zero, nil
	}
	return list[len(list)-1], nil
}

// GetOr returns the last value for key, or def when the key is missing or
// holds an empty list.
func (m *MultiValueMap[V]) GetOr(key string, def V) V {
	list := m.lists[key]
	if len(list) == 0 {
		return def
	}
	return list[len(list)-1]
}

// Set replaces the values of key with a single value.
func (m *MultiValueMap[V]) Set(key string, value V) {
	m.SetList(key, []V{value})
}

// GetList returns a copy of the values for key, or an empty list.
func (m *MultiValueMap[V]) GetList(key string) []V {
	return m.GetListOr(key, []V{})
}

// GetListOr returns a copy of the values for key, or def when key is missing.
func (m *MultiValueMap[V]) GetListOr(key string, def []V) []V {
	list, ok := m.lists[key]
	if !ok {
		return def
	}
	if list == nil {
		return []V{}
	}
	return slices.Clone(list)
}

// SetList replaces the values of key.
func (m *MultiValueMap[V]) SetList(key string, list []V) {
	m.init()
	if _, ok := m.lists[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.lists[key] = slices.Clone(list)
}

// SetDefault sets key to def if missing and returns the last value for key.
func (m *MultiValueMap[V]) SetDefault(key string, def V) V {
	if !m.Has(key) {
		m.Set(key, def)
	}
	v, _ := m.Get(key)
	return v
}

// SetListDefault sets the values of key to def if missing and returns a copy
// of the values for key.
func (m *MultiValueMap[V]) SetListDefault(key string, def []V) []V {
	if !m.Has(key) {
		if def == nil {
			def = []V{}
		}
		m.SetList(key, def)
	}
	return m.GetList(key)
}

// AppendList adds value to the values of key.
func (m *MultiValueMap[V]) AppendList(key string, values ...V) {
	m.SetListDefault(key, nil)
	m.lists[key] = append(m.lists[key], values...)
}

// Delete removes key.
func (m *MultiValueMap[V]) Delete(key string) {
	if _, ok := m.lists[key]; !ok {
		return
	}
	delete(m.lists, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Has reports whether key is present.
func (m *MultiValueMap[V]) Has(key string) bool {
	_, ok := m.lists[key]
	return ok
}

// Len returns the number of keys.
func (m *MultiValueMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *MultiValueMap[V]) Keys() []string {
	return slices.Clone(m.keys)
}

// Items yields each key with its last value.
func (m *MultiValueMap[V]) Items() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			v, _ := m.Get(k)
			if !yield(k, v) {
				return
			}
		}
	}
}

// Lists yields each key with all of its values.
func (m *MultiValueMap[V]) Lists() iter.Seq2[string, []V] {
	return func(yield func(string, []V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.lists[k]) {
				return
			}
		}
	}
}

// Values yields the last value of each key.
func (m *MultiValueMap[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.Items() {
			if !yield(v) {
				return
			}
		}
	}
}

// Copy returns a map with copies of every value list.
func (m *MultiValueMap[V]) Copy() *MultiValueMap[V] {
	out := &MultiValueMap[V]{}
	for k, list := range m.Lists() {
		out.SetList(k, list)
	}
	return out
}

// Update extends the value lists of m with those of other.
func (m *MultiValueMap[V]) Update(other *MultiValueMap[V]) {
	for k, list := range other.Lists() {
		m.AppendList(k, list...)
	}
}

// UpdateMap appends each value of values to its key.
func (m *MultiValueMap[V]) UpdateMap(values map[string]V) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m.AppendList(k, values[k])
	}
}

// Pair is a key and a value.
type Pair[V any] struct {
	Key   string
	Value V
}

// UpdatePairs appends each pair's value to its key, in order.
func (m *MultiValueMap[V]) UpdatePairs(pairs ...Pair[V]) {
	for _, p := range pairs {
		m.AppendList(p.Key, p.Value)
	}
}

// Dict returns a plain map of each key to its last value.
func (m *MultiValueMap[V]) Dict() map[string]V {
	out := make(map[string]V, m.Len())
	for k, v := range m.Items() {
		out[k] = v
	}
	return out
}

// String implements fmt.Stringer.
func (m *MultiValueMap[V]) String() string {
	var buf bytes.Buffer
	buf.WriteString("MultiValueMap{")
	i := 0
	for k, list := range m.Lists() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %v", k, list)
		i++
	}
	buf.WriteString("}")
	return buf.String()
}

// MarshalJSON encodes the map as an object of value lists, keys in
// insertion order.
func (m *MultiValueMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, list := range m.Lists() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		if list == nil {
			list = []V{}
		}
		values, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(values)
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of value lists, keeping document order.
// Existing keys are replaced.
func (m *MultiValueMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("multivalue map: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("multivalue map: expected key, got %v", tok)
		}
		var list []V
		if err := dec.Decode(&list); err != nil {
			return fmt.Errorf("multivalue map: decode %q: %w", key, err)
		}
		m.SetList(key, list)
	}

	_, err = dec.Token()
	return err
}
