package paginator

// Collection is an ordered sequence that can be measured and sliced.
type Collection[T any] interface {
	// Len returns the number of items.
	Len() int

	// Slice returns items in the half-open range [start, end).
	// Callers guarantee 0 <= start <= end <= Len().
	Slice(start, end int) []T
}

// Counter is implemented by collections that can report their size without
// materializing items (e.g. a COUNT query or LLEN).
type Counter interface {
	Count() int
}

// Orderer is implemented by collections that know whether their ordering is
// stable. Paginating an unordered collection logs a warning.
type Orderer interface {
	Ordered() bool
}

// SliceCollection adapts a plain slice to Collection.
type SliceCollection[T any] []T

// FromSlice wraps items as a Collection.
func FromSlice[T any](items []T) SliceCollection[T] {
	return SliceCollection[T](items)
}

// Len implements Collection.
func (s SliceCollection[T]) Len() int {
	return len(s)
}

// Slice implements Collection.
func (s SliceCollection[T]) Slice(start, end int) []T {
	return s[start:end]
}
