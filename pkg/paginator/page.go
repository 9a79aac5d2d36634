package paginator

import (
	"fmt"
	"iter"
)

// Page is one page of a Paginator: its items, its 1-based number and a
// back-reference to the paginator for navigation queries.
type Page[T any] struct {
	items     []T
	number    int
	paginator *Paginator[T]
}

// Summary is the navigation metadata of a page, shaped for JSON responses.
type Summary struct {
	Number     int  `json:"number"`
	NumPages   int  `json:"num_pages"`
	Count      int  `json:"count"`
	PerPage    int  `json:"per_page"`
	StartIndex int  `json:"start_index"`
	EndIndex   int  `json:"end_index"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_previous"`
	Next       int  `json:"next,omitempty"`
	Previous   int  `json:"previous,omitempty"`
}

// String implements fmt.Stringer.
func (p *Page[T]) String() string {
	return fmt.Sprintf("Page %d of %d", p.number, p.paginator.NumPages())
}

// Number returns the 1-based page number.
func (p *Page[T]) Number() int {
	return p.number
}

// Paginator returns the paginator that built this page.
func (p *Page[T]) Paginator() *Paginator[T] {
	return p.paginator
}

// Len returns the number of items on the page.
func (p *Page[T]) Len() int {
	return len(p.items)
}

// At returns the i-th item on the page. Negative indices count from the end.
// It panics when i is out of range, like a slice index.
func (p *Page[T]) At(i int) T {
	if i < 0 {
		i += len(p.items)
	}
	return p.items[i]
}

// Items returns the items on the page. The slice must not be modified.
func (p *Page[T]) Items() []T {
	return p.items
}

// All yields the page's items with their index on the page.
func (p *Page[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range p.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// HasNext reports whether a page follows this one.
func (p *Page[T]) HasNext() bool {
	return p.number < p.paginator.NumPages()
}

// HasPrevious reports whether a page precedes this one.
func (p *Page[T]) HasPrevious() bool {
	return p.number > 1
}

// HasOtherPages reports whether the paginator has more than this page.
func (p *Page[T]) HasOtherPages() bool {
	return p.HasPrevious() || p.HasNext()
}

// NextPageNumber returns the following page number, or ErrEmptyPage on the
// last page.
func (p *Page[T]) NextPageNumber() (int, error) {
	return p.paginator.ValidateNumber(p.number + 1)
}

// PreviousPageNumber returns the preceding page number, or ErrEmptyPage on
// the first page.
func (p *Page[T]) PreviousPageNumber() (int, error) {
	return p.paginator.ValidateNumber(p.number - 1)
}

// StartIndex returns the 1-based index of the first item on the page
// relative to the whole collection. It is 0 for an empty collection.
func (p *Page[T]) StartIndex() int {
	if p.paginator.Count() == 0 {
		return 0
	}
	return p.paginator.PerPage()*(p.number-1) + 1
}

// EndIndex returns the 1-based index of the last item on the page relative
// to the whole collection.
func (p *Page[T]) EndIndex() int {
	if p.number == p.paginator.NumPages() {
		return p.paginator.Count()
	}
	return p.number * p.paginator.PerPage()
}

// Summary returns the page's navigation metadata.
func (p *Page[T]) Summary() Summary {
	s := Summary{
		Number:     p.number,
		NumPages:   p.paginator.NumPages(),
		Count:      p.paginator.Count(),
		PerPage:    p.paginator.PerPage(),
		StartIndex: p.StartIndex(),
		EndIndex:   p.EndIndex(),
		HasNext:    p.HasNext(),
		HasPrev:    p.HasPrevious(),
	}
	if s.HasNext {
		s.Next = p.number + 1
	}
	if s.HasPrev {
		s.Previous = p.number - 1
	}
	return s
}
