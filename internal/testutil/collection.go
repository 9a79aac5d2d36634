// Package testutil provides test doubles shared by the webkit packages.
package testutil

import (
	"fmt"
	"sync"
)

// MockCollection is an in-memory collection that records how it is accessed.
type MockCollection[T any] struct {
	mu    sync.Mutex
	items []T

	// Tracking
	LenCalls   int
	SliceCalls int
	LastSlice  [2]int
}

// NewMockCollection creates a collection over items.
func NewMockCollection[T any](items []T) *MockCollection[T] {
	return &MockCollection[T]{items: items}
}

// Len returns the number of items.
func (m *MockCollection[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LenCalls++
	return len(m.items)
}

// Slice returns items[start:end].
func (m *MockCollection[T]) Slice(start, end int) []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SliceCalls++
	m.LastSlice = [2]int{start, end}
	return m.items[start:end]
}

// Append adds items after construction, for staleness tests.
func (m *MockCollection[T]) Append(items ...T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
}

// Reset clears all tracking counters.
func (m *MockCollection[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LenCalls = 0
	m.SliceCalls = 0
	m.LastSlice = [2]int{}
}

// MockCounter is a MockCollection with a fast Count, like a COUNT query.
type MockCounter[T any] struct {
	*MockCollection[T]

	// CountValue is returned by Count. A negative value returns the real length.
	CountValue int
	CountCalls int
}

// NewMockCounter creates a counting collection over items.
func NewMockCounter[T any](items []T) *MockCounter[T] {
	return &MockCounter[T]{MockCollection: NewMockCollection(items), CountValue: -1}
}

// Count returns CountValue or the number of items without touching Len.
func (m *MockCounter[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CountCalls++
	if m.CountValue >= 0 {
		return m.CountValue
	}
	return len(m.items)
}

// MockOrdered is a MockCollection that declares whether its order is stable.
type MockOrdered[T any] struct {
	*MockCollection[T]
	IsOrdered bool
}

// NewMockOrdered creates a collection over items reporting ordered.
func NewMockOrdered[T any](items []T, ordered bool) *MockOrdered[T] {
	return &MockOrdered[T]{MockCollection: NewMockCollection(items), IsOrdered: ordered}
}

// Ordered reports IsOrdered.
func (m *MockOrdered[T]) Ordered() bool {
	return m.IsOrdered
}

// String describes the collection in warnings.
func (m *MockOrdered[T]) String() string {
	return fmt.Sprintf("MockOrdered(%d items)", len(m.items))
}

// Ints returns 1..n.
func Ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
