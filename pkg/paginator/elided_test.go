package paginator

import (
	"errors"
	"strings"
	"testing"

	"github.com/Sternrassler/go-webkit/internal/testutil"
)

// strip renders an elided range as space-separated labels.
func strip(t *testing.T, p *Paginator[int], number any, onEachSide, onEnds int) string {
	t.Helper()
	links, err := p.ElidedPageRange(number, onEachSide, onEnds)
	if err != nil {
		t.Fatalf("ElidedPageRange(%v) error = %v", number, err)
	}
	var labels []string
	for l := range links {
		labels = append(labels, l.String())
	}
	return strings.Join(labels, " ")
}

func TestPaginator_ElidedPageRange(t *testing.T) {
	hundred := mustNew(t, FromSlice(testutil.Ints(100)), 1)
	ten := mustNew(t, FromSlice(testutil.Ints(10)), 1)

	tests := []struct {
		name       string
		p          *Paginator[int]
		number     int
		onEachSide int
		onEnds     int
		want       string
	}{
		{name: "middle", p: hundred, number: 10, onEachSide: 3, onEnds: 2, want: "1 2 … 7 8 9 10 11 12 13 … 99 100"},
		{name: "first", p: hundred, number: 1, onEachSide: 3, onEnds: 2, want: "1 2 3 4 … 99 100"},
		{name: "prefix_boundary", p: hundred, number: 7, onEachSide: 3, onEnds: 2, want: "1 2 3 4 5 6 7 8 9 10 … 99 100"},
		{name: "first_elision", p: hundred, number: 8, onEachSide: 3, onEnds: 2, want: "1 2 … 5 6 7 8 9 10 11 … 99 100"},
		{name: "suffix_boundary", p: hundred, number: 94, onEachSide: 3, onEnds: 2, want: "1 2 … 91 92 93 94 95 96 97 98 99 100"},
		{name: "last_elision", p: hundred, number: 93, onEachSide: 3, onEnds: 2, want: "1 2 … 90 91 92 93 94 95 96 … 99 100"},
		{name: "last", p: hundred, number: 100, onEachSide: 3, onEnds: 2, want: "1 2 … 97 98 99 100"},
		{name: "fits", p: ten, number: 5, onEachSide: 3, onEnds: 2, want: "1 2 3 4 5 6 7 8 9 10"},
		{name: "no_sides_no_ends", p: ten, number: 5, onEachSide: 0, onEnds: 0, want: "… 5 …"},
		{name: "no_sides_first", p: ten, number: 1, onEachSide: 0, onEnds: 0, want: "1 …"},
		{name: "wide_ends", p: hundred, number: 50, onEachSide: 1, onEnds: 3, want: "1 2 3 … 49 50 51 … 98 99 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strip(t, tt.p, tt.number, tt.onEachSide, tt.onEnds)
			if got != tt.want {
				t.Errorf("ElidedPageRange(%d, %d, %d) = %q, want %q", tt.number, tt.onEachSide, tt.onEnds, got, tt.want)
			}
		})
	}
}

func TestPaginator_ElidedPageRangeLinks(t *testing.T) {
	p := mustNew(t, FromSlice(testutil.Ints(100)), 1)

	links, err := p.ElidedPageRange(10, DefaultOnEachSide, DefaultOnEnds)
	if err != nil {
		t.Fatalf("ElidedPageRange error = %v", err)
	}

	want := []int{1, 2, 0, 7, 8, 9, 10, 11, 12, 13, 0, 99, 100}
	var got []int
	for l := range links {
		if l.IsEllipsis() != (l.Number == 0) {
			t.Errorf("IsEllipsis() inconsistent for %+v", l)
		}
		got = append(got, l.Number)
	}
	if !equalInts(got, want) {
		t.Errorf("ElidedPageRange numbers = %v, want %v", got, want)
	}

	// The sequence can be ranged again and stops early on break.
	n := 0
	for range links {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("Expected early break after 3 links, got %d", n)
	}
}

func TestPaginator_ElidedPageRangeCustomEllipsis(t *testing.T) {
	p := mustNew(t, FromSlice(testutil.Ints(50)), 1, WithMessages(Messages{Ellipsis: "..."}))

	got := strip(t, p, 25, DefaultOnEachSide, DefaultOnEnds)
	want := "1 2 ... 22 23 24 25 26 27 28 ... 49 50"
	if got != want {
		t.Errorf("ElidedPageRange = %q, want %q", got, want)
	}
}

func TestPaginator_ElidedPageRangeInvalid(t *testing.T) {
	p := mustNew(t, FromSlice(testutil.Ints(100)), 10)

	if _, err := p.ElidedPageRange(11, 3, 2); !errors.Is(err, ErrEmptyPage) {
		t.Errorf("Expected ErrEmptyPage, got %v", err)
	}
	if _, err := p.ElidedPageRange("x", 3, 2); !errors.Is(err, ErrPageNotAnInteger) {
		t.Errorf("Expected ErrPageNotAnInteger, got %v", err)
	}
}
