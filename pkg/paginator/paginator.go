package paginator

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/Sternrassler/go-webkit/pkg/logging"
	"github.com/rs/zerolog"
)

// Config holds paginator configuration.
type Config struct {
	// PerPage is the maximum number of items on a page (must be >= 1).
	PerPage int

	// Orphans is the minimum number of items the last page must hold.
	// A shorter trailing page is merged into the previous one.
	Orphans int

	// AllowEmptyFirstPage makes an empty collection paginate to one empty
	// page instead of zero pages.
	AllowEmptyFirstPage bool

	// Messages overrides the default texts field by field.
	Messages Messages
}

// DefaultConfig returns the default paginator configuration.
func DefaultConfig() Config {
	return Config{
		PerPage:             25,
		Orphans:             0,
		AllowEmptyFirstPage: true,
		Messages:            DefaultMessages(),
	}
}

// Option customizes a Paginator created by New.
type Option func(*options)

type options struct {
	cfg    Config
	logger *zerolog.Logger
}

// WithOrphans sets the orphan threshold.
func WithOrphans(orphans int) Option {
	return func(o *options) { o.cfg.Orphans = orphans }
}

// WithAllowEmptyFirstPage controls whether an empty collection has one page.
func WithAllowEmptyFirstPage(allow bool) Option {
	return func(o *options) { o.cfg.AllowEmptyFirstPage = allow }
}

// WithMessages merges msgs over the default texts.
func WithMessages(msgs Messages) Option {
	return func(o *options) { o.cfg.Messages = o.cfg.Messages.Merge(msgs) }
}

// WithLogger sets the logger used for advisory warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = &logger }
}

// Paginator splits a Collection into pages of PerPage items.
type Paginator[T any] struct {
	items  Collection[T]
	config Config
	logger zerolog.Logger

	count     int
	counted   bool
	numPages  int
	paged     bool
	unordered bool
}

// New creates a paginator over items with the given page size.
func New[T any](items Collection[T], perPage int, opts ...Option) (*Paginator[T], error) {
	o := options{cfg: DefaultConfig()}
	o.cfg.PerPage = perPage
	for _, opt := range opts {
		opt(&o)
	}
	return newPaginator(items, o)
}

// NewWithConfig creates a paginator from a Config. Empty message fields fall
// back to the defaults.
func NewWithConfig[T any](items Collection[T], cfg Config, opts ...Option) (*Paginator[T], error) {
	cfg.Messages = DefaultMessages().Merge(cfg.Messages)
	o := options{cfg: cfg}
	for _, opt := range opts {
		opt(&o)
	}
	return newPaginator(items, o)
}

func newPaginator[T any](items Collection[T], o options) (*Paginator[T], error) {
	if items == nil {
		return nil, fmt.Errorf("%w: collection is required", ErrInvalidConfig)
	}
	if o.cfg.PerPage < 1 {
		return nil, fmt.Errorf("%w: per_page must be >= 1 (got %d)", ErrInvalidConfig, o.cfg.PerPage)
	}
	if o.cfg.Orphans < 0 {
		return nil, fmt.Errorf("%w: orphans must be >= 0 (got %d)", ErrInvalidConfig, o.cfg.Orphans)
	}

	p := &Paginator[T]{
		items:  items,
		config: o.cfg,
	}
	if o.logger != nil {
		p.logger = *o.logger
	} else {
		p.logger = logging.NewLogger("paginator")
	}

	p.checkOrdered()
	return p, nil
}

// checkOrdered warns when the collection reports an unstable ordering.
func (p *Paginator[T]) checkOrdered() {
	o, ok := p.items.(Orderer)
	if !ok || o.Ordered() {
		return
	}

	p.unordered = true
	UnorderedWarnings.Inc()
	p.logger.Warn().
		Str("collection", describe(p.items)).
		Msg("Pagination may yield inconsistent results with an unordered collection")
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}

// Count returns the total number of items. Collections implementing Counter
// are asked via Count, others via Len. The result is cached.
func (p *Paginator[T]) Count() int {
	if !p.counted {
		if c, ok := p.items.(Counter); ok {
			p.count = c.Count()
		} else {
			p.count = p.items.Len()
		}
		p.counted = true
	}
	return p.count
}

// NumPages returns the total number of pages. The result is cached.
func (p *Paginator[T]) NumPages() int {
	if !p.paged {
		p.numPages = p.computeNumPages()
		p.paged = true
	}
	return p.numPages
}

func (p *Paginator[T]) computeNumPages() int {
	count := p.Count()
	if count == 0 && !p.config.AllowEmptyFirstPage {
		return 0
	}
	hits := max(1, count-p.config.Orphans)
	return (hits + p.config.PerPage - 1) / p.config.PerPage
}

// PageRange yields the page numbers 1..NumPages.
func (p *Paginator[T]) PageRange() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := 1; n <= p.NumPages(); n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Pages yields every page in order.
func (p *Paginator[T]) Pages() iter.Seq[*Page[T]] {
	return func(yield func(*Page[T]) bool) {
		for n := range p.PageRange() {
			page, err := p.Page(n)
			if err != nil {
				return
			}
			if !yield(page) {
				return
			}
		}
	}
}

// ValidateNumber converts number to a page number within [1, NumPages].
//
// Accepted inputs are integer types, floats with no fractional part and
// decimal strings. It returns a *PageError of kind ErrPageNotAnInteger or
// ErrEmptyPage otherwise.
func (p *Paginator[T]) ValidateNumber(number any) (int, error) {
	n, ok := toInt(number)
	if !ok {
		InvalidPages.WithLabelValues(metricKind(ErrPageNotAnInteger)).Inc()
		return 0, notAnInteger(p.config.Messages.InvalidPage, number)
	}
	if n < 1 {
		InvalidPages.WithLabelValues(metricKind(ErrEmptyPage)).Inc()
		return 0, emptyPage(p.config.Messages.MinPage, number)
	}
	if n > p.NumPages() {
		InvalidPages.WithLabelValues(metricKind(ErrEmptyPage)).Inc()
		return 0, emptyPage(p.config.Messages.NoResults, number)
	}
	return n, nil
}

// Page returns the page with the given number.
func (p *Paginator[T]) Page(number any) (*Page[T], error) {
	n, err := p.ValidateNumber(number)
	if err != nil {
		return nil, err
	}

	bottom := (n - 1) * p.config.PerPage
	top := bottom + p.config.PerPage
	if top+p.config.Orphans >= p.Count() {
		top = p.Count()
	}

	PagesBuilt.Inc()
	p.logger.Debug().
		Int("page", n).
		Int("bottom", bottom).
		Int("top", top).
		Int("num_pages", p.NumPages()).
		Msg("Page built")

	return &Page[T]{
		items:     p.items.Slice(bottom, top),
		number:    n,
		paginator: p,
	}, nil
}

// GetPage is the forgiving variant of Page: input that is not an integer
// yields the first page, out-of-range input yields the last page.
//
// It only fails when the paginator has no pages at all.
func (p *Paginator[T]) GetPage(number any) (*Page[T], error) {
	n, err := p.ValidateNumber(number)
	if err != nil {
		var pe *PageError
		if !errors.As(err, &pe) {
			return nil, err
		}
		switch pe.Kind {
		case ErrPageNotAnInteger:
			n = 1
		case ErrEmptyPage:
			n = p.NumPages()
		}
		ClampedPages.WithLabelValues(metricKind(pe.Kind)).Inc()
		p.logger.Debug().
			Interface("requested", number).
			Int("page", n).
			Msg("Page number clamped")
	}
	return p.Page(n)
}

// PerPage returns the page size.
func (p *Paginator[T]) PerPage() int { return p.config.PerPage }

// Orphans returns the orphan threshold.
func (p *Paginator[T]) Orphans() int { return p.config.Orphans }

// AllowEmptyFirstPage reports whether an empty collection has one page.
func (p *Paginator[T]) AllowEmptyFirstPage() bool { return p.config.AllowEmptyFirstPage }

// Messages returns the effective message table.
func (p *Paginator[T]) Messages() Messages { return p.config.Messages }

// Unordered reports whether the collection declared an unstable ordering.
func (p *Paginator[T]) Unordered() bool { return p.unordered }

// toInt reports whether v is a whole number and returns it. Values beyond
// the int range saturate so they still fail the upper bound check.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return saturate(float64(n), n), true
	case uint:
		return uintToInt(uint64(n)), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return uintToInt(uint64(n)), true
	case uint64:
		return uintToInt(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		return stringToInt(n.String())
	case string:
		return stringToInt(n)
	default:
		return 0, false
	}
}

func saturate(f float64, n int64) int {
	if f > math.MaxInt {
		return math.MaxInt
	}
	if f < math.MinInt {
		return math.MinInt
	}
	return int(n)
}

func uintToInt(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt {
		return math.MaxInt, true
	}
	if f <= math.MinInt {
		return math.MinInt, true
	}
	return int(f), true
}

func stringToInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		if strings.HasPrefix(s, "-") {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return 0, false
}
