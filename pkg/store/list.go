package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sternrassler/go-webkit/pkg/logging"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var (
	// ErrInvalidEntry indicates a stored element could not be decoded
	ErrInvalidEntry = errors.New("invalid list entry")

	// ErrInvalidRange indicates a range with start > end or start < 0
	ErrInvalidRange = errors.New("invalid list range")
)

// ListOption customizes a List.
type ListOption func(*listOptions)

type listOptions struct {
	ttl    time.Duration
	logger *zerolog.Logger
	now    func() time.Time
}

// WithTTL expires the whole list ttl after the last push. Zero disables
// expiry.
func WithTTL(ttl time.Duration) ListOption {
	return func(o *listOptions) { o.ttl = ttl }
}

// WithLogger sets the logger used for operation details.
func WithLogger(logger zerolog.Logger) ListOption {
	return func(o *listOptions) { o.logger = &logger }
}

// List is a Redis list of JSON-encoded elements.
type List[T any] struct {
	redis  *redis.Client
	key    ListKey
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

// NewList creates a list stored under key.
func NewList[T any](redisClient *redis.Client, key ListKey, opts ...ListOption) *List[T] {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}

	o := listOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	l := &List[T]{
		redis: redisClient,
		key:   key,
		ttl:   o.ttl,
		now:   o.now,
	}
	if o.logger != nil {
		l.logger = *o.logger
	} else {
		l.logger = logging.NewLogger("store")
	}
	return l
}

// Key returns the key the list is stored under.
func (l *List[T]) Key() ListKey {
	return l.key
}

// Push appends items to the tail of the list.
func (l *List[T]) Push(ctx context.Context, items ...T) error {
	if len(items) == 0 {
		return nil
	}
	StoreOps.WithLabelValues("push").Inc()

	now := l.now()
	values := make([]any, len(items))
	for i, item := range items {
		data, err := encodeEntry(item, now)
		if err != nil {
			StoreErrors.WithLabelValues("push").Inc()
			return err
		}
		values[i] = data
	}

	key := l.key.String()
	pipe := l.redis.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if l.ttl > 0 {
		pipe.Expire(ctx, key, l.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		StoreErrors.WithLabelValues("push").Inc()
		return fmt.Errorf("redis rpush: %w", err)
	}

	l.logger.Debug().
		Str("key", key).
		Int("count", len(items)).
		Dur("ttl", l.ttl).
		Msg("Pushed list entries")
	return nil
}

// Len returns the number of elements (LLEN).
func (l *List[T]) Len(ctx context.Context) (int, error) {
	StoreOps.WithLabelValues("len").Inc()

	n, err := l.redis.LLen(ctx, l.key.String()).Result()
	if err != nil {
		StoreErrors.WithLabelValues("len").Inc()
		return 0, fmt.Errorf("redis llen: %w", err)
	}
	return int(n), nil
}

// Entries returns the stored entries in [start, end).
func (l *List[T]) Entries(ctx context.Context, start, end int) ([]Entry[T], error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: [%d:%d]", ErrInvalidRange, start, end)
	}
	if start == end {
		return []Entry[T]{}, nil
	}
	StoreOps.WithLabelValues("range").Inc()

	key := l.key.String()
	raw, err := l.redis.LRange(ctx, key, int64(start), int64(end-1)).Result()
	if err != nil {
		StoreErrors.WithLabelValues("range").Inc()
		return nil, fmt.Errorf("redis lrange: %w", err)
	}

	entries := make([]Entry[T], 0, len(raw))
	for _, data := range raw {
		e, err := decodeEntry[T]([]byte(data))
		if err != nil {
			StoreErrors.WithLabelValues("range").Inc()
			return nil, err
		}
		entries = append(entries, e)
	}

	l.logger.Debug().
		Str("key", key).
		Int("start", start).
		Int("end", end).
		Int("returned", len(entries)).
		Msg("Read list range")
	return entries, nil
}

// Range returns the values in [start, end).
func (l *List[T]) Range(ctx context.Context, start, end int) ([]T, error) {
	entries, err := l.Entries(ctx, start, end)
	if err != nil {
		return nil, err
	}
	values := make([]T, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return values, nil
}

// Delete removes the list.
func (l *List[T]) Delete(ctx context.Context) error {
	StoreOps.WithLabelValues("delete").Inc()

	if err := l.redis.Del(ctx, l.key.String()).Err(); err != nil {
		StoreErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Bind returns a view of the list that satisfies the paginator collection
// interfaces using ctx for every call.
func (l *List[T]) Bind(ctx context.Context) *Bound[T] {
	return &Bound[T]{list: l, ctx: ctx}
}

// Bound is a List bound to a context. Its methods cannot return errors, so
// the first failure is kept and reported by Err; failed calls return zero
// values.
type Bound[T any] struct {
	list *List[T]
	ctx  context.Context
	err  error
}

// Len returns the list length, or 0 after a failure.
func (b *Bound[T]) Len() int {
	n, err := b.list.Len(b.ctx)
	if err != nil {
		b.fail(err)
		return 0
	}
	return n
}

// Count returns the list length; it satisfies paginator.Counter.
func (b *Bound[T]) Count() int {
	return b.Len()
}

// Slice returns the values in [start, end), or nil after a failure.
func (b *Bound[T]) Slice(start, end int) []T {
	values, err := b.list.Range(b.ctx, start, end)
	if err != nil {
		b.fail(err)
		return nil
	}
	return values
}

// Ordered reports true; Redis lists keep insertion order.
func (b *Bound[T]) Ordered() bool {
	return true
}

// String identifies the list in log output.
func (b *Bound[T]) String() string {
	return "store.List(" + b.list.key.String() + ")"
}

// Err returns the first error seen by Len, Count or Slice.
func (b *Bound[T]) Err() error {
	return b.err
}

func (b *Bound[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
	b.list.logger.Warn().Err(err).Str("key", b.list.key.String()).Msg("List read failed")
}
