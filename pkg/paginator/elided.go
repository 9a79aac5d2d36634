package paginator

import (
	"iter"
	"strconv"
)

// Defaults for ElidedPageRange.
const (
	DefaultOnEachSide = 3
	DefaultOnEnds     = 2
)

// PageLink is one entry of an elided page range: either a page number or the
// ellipsis placeholder that stands for a run of omitted pages.
type PageLink struct {
	// Number is the page number, 0 for the placeholder.
	Number int `json:"number,omitempty"`

	// Label is the text to render.
	Label string `json:"label"`
}

// IsEllipsis reports whether the link is the placeholder.
func (l PageLink) IsEllipsis() bool {
	return l.Number == 0
}

// String implements fmt.Stringer.
func (l PageLink) String() string {
	return l.Label
}

// ElidedPageRange returns a compressed strip of page links around number,
// e.g. 1 2 … 7 8 9 10 11 12 13 … 99 100 for number 10 of 100 pages.
//
// onEachSide pages are kept on each side of number and onEnds pages at each
// end of the range. When all pages fit in 2*(onEachSide+onEnds) no elision
// happens. number is validated before the sequence is returned.
func (p *Paginator[T]) ElidedPageRange(number any, onEachSide, onEnds int) (iter.Seq[PageLink], error) {
	n, err := p.ValidateNumber(number)
	if err != nil {
		return nil, err
	}

	numPages := p.NumPages()
	ellipsis := PageLink{Label: p.config.Messages.Ellipsis}

	return func(yield func(PageLink) bool) {
		emit := func(from, to int) bool {
			for i := from; i <= to; i++ {
				if !yield(PageLink{Number: i, Label: strconv.Itoa(i)}) {
					return false
				}
			}
			return true
		}

		if numPages <= (onEachSide+onEnds)*2 {
			emit(1, numPages)
			return
		}

		if n > (1+onEachSide+onEnds)+1 {
			if !emit(1, onEnds) || !yield(ellipsis) || !emit(n-onEachSide, n) {
				return
			}
		} else if !emit(1, n) {
			return
		}

		if n < (numPages-onEachSide-onEnds)-1 {
			if !emit(n+1, n+onEachSide) || !yield(ellipsis) {
				return
			}
			emit(numPages-onEnds+1, numPages)
		} else {
			emit(n+1, numPages)
		}
	}, nil
}
