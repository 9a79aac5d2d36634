package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Sternrassler/go-webkit/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Prometheus metrics for rate limiting.
var (
	rateLimitBlocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "webkit_ratelimit_blocks_total",
		Help: "Total number of requests rejected because the window limit was exceeded",
	})

	rateLimitErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "webkit_ratelimit_errors_total",
		Help: "Total number of Redis errors while counting requests (requests were allowed)",
	})
)

// ErrInvalidConfig indicates a limiter configuration that cannot work.
var ErrInvalidConfig = errors.New("invalid rate limit config")

// KeyFunc derives the client key a request is counted under.
type KeyFunc func(*http.Request) string

// Config holds limiter configuration.
type Config struct {
	// Limit is the number of requests allowed per window (must be >= 1).
	Limit int

	// Window is the length of one counting window (must be >= 1s).
	Window time.Duration

	// KeyFunc selects the client key (default: remote IP).
	KeyFunc KeyFunc
}

// DefaultConfig returns a limiter configuration with DefaultLimit requests
// per DefaultWindow, keyed by remote IP.
func DefaultConfig() Config {
	return Config{
		Limit:   DefaultLimit,
		Window:  DefaultWindow,
		KeyFunc: RemoteIP,
	}
}

// RemoteIP keys requests by the host part of RemoteAddr.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Limiter counts requests per client in fixed windows and rejects requests
// over the limit.
type Limiter struct {
	redis  *redis.Client
	cfg    Config
	logger zerolog.Logger
	now    func() time.Time
}

// NewLimiter creates a new limiter.
func NewLimiter(redisClient *redis.Client, cfg Config, logger zerolog.Logger) (*Limiter, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("%w: redis client is required", ErrInvalidConfig)
	}
	if cfg.Limit < 1 {
		return nil, fmt.Errorf("%w: limit must be >= 1 (got %d)", ErrInvalidConfig, cfg.Limit)
	}
	if cfg.Window < time.Second {
		return nil, fmt.Errorf("%w: window must be >= 1s (got %s)", ErrInvalidConfig, cfg.Window)
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = RemoteIP
	}

	return &Limiter{
		redis:  redisClient,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (l *Limiter) redisKey(key string, start time.Time) string {
	return fmt.Sprintf("%s:%s:%d", RedisKeyPrefix, key, start.Unix())
}

// Allow counts one request for key and reports whether it may proceed.
//
// Redis failures fail open: the request is allowed, the error is logged,
// counted and returned so callers can decide to surface it.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, State, error) {
	now := l.now()
	start := windowStart(now, l.cfg.Window)
	state := State{
		Limit:   l.cfg.Limit,
		ResetAt: start.Add(l.cfg.Window),
	}
	redisKey := l.redisKey(key, start)

	// INCR and EXPIRE in one round trip
	pipe := l.redis.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		rateLimitErrorsTotal.Inc()
		l.logger.Warn().
			Err(err).
			Str("key", key).
			Msg("Rate limit counter unavailable - allowing request")
		return true, state, fmt.Errorf("increment rate limit counter: %w", err)
	}

	state.Count = int(min(incr.Val(), math.MaxInt32))

	if state.Exceeded() {
		rateLimitBlocksTotal.Inc()
		l.logger.Warn().
			Str("key", key).
			Int("count", state.Count).
			Int("limit", state.Limit).
			Dur("wait_duration", state.ResetAt.Sub(now)).
			Msg("Rate limit exceeded - blocking request")
		return false, state, nil
	}

	if state.NearLimit() {
		l.logger.Debug().
			Str("key", key).
			Int("remaining", state.Remaining()).
			Msg("Rate limit nearly exhausted")
	}
	return true, state, nil
}

// Peek returns the state of key in the current window without counting a
// request.
func (l *Limiter) Peek(ctx context.Context, key string) (State, error) {
	now := l.now()
	start := windowStart(now, l.cfg.Window)
	state := State{
		Limit:   l.cfg.Limit,
		ResetAt: start.Add(l.cfg.Window),
	}

	count, err := l.redis.Get(ctx, l.redisKey(key, start)).Int()
	if err != nil && err != redis.Nil {
		return state, fmt.Errorf("get rate limit counter: %w", err)
	}
	state.Count = count
	return state, nil
}

// Middleware returns a hook factory for middleware.FromMiddleware. Requests
// over the limit get a 429 with Retry-After.
func (l *Limiter) Middleware() func(middleware.View) any {
	return func(middleware.View) any {
		return &limitHook{limiter: l}
	}
}

type limitHook struct {
	limiter *Limiter
}

func (h *limitHook) ProcessRequest(r *http.Request) *middleware.Response {
	allowed, state, _ := h.limiter.Allow(r.Context(), h.limiter.cfg.KeyFunc(r))
	if allowed {
		return nil
	}

	resp := middleware.NewResponse(http.StatusTooManyRequests, []byte(http.StatusText(http.StatusTooManyRequests)))
	resp.Header.Set("Content-Type", "text/plain; charset=utf-8")
	resp.Header.Set("X-RateLimit-Limit", strconv.Itoa(state.Limit))
	resp.Header.Set("X-RateLimit-Remaining", strconv.Itoa(state.Remaining()))
	resp.Header.Set("Retry-After", strconv.Itoa(retryAfterSeconds(state.ResetAt.Sub(h.limiter.now()))))
	return resp
}

func retryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 1
	}
	return int(math.Ceil(d.Seconds()))
}
