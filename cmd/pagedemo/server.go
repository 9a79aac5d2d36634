package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/Sternrassler/go-webkit/pkg/config"
	"github.com/Sternrassler/go-webkit/pkg/metrics"
	"github.com/Sternrassler/go-webkit/pkg/middleware"
	"github.com/Sternrassler/go-webkit/pkg/paginator"
	"github.com/Sternrassler/go-webkit/pkg/ratelimit"
	"github.com/Sternrassler/go-webkit/pkg/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Item is one element of the demo list.
type Item struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// itemSource opens the item collection for one request. The returned
// function reports a read failure that happened while paginating.
type itemSource func(ctx context.Context) (paginator.Collection[Item], func() error)

func listSource(list *store.List[Item]) itemSource {
	return func(ctx context.Context) (paginator.Collection[Item], func() error) {
		bound := list.Bind(ctx)
		return bound, bound.Err
	}
}

// pinger is satisfied by *redis.Client.
type pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type serverConfig struct {
	Pagination config.PaginationConfig
	Source     itemSource
	Pinger     pinger
	Limiter    *ratelimit.Limiter
	Logger     zerolog.Logger
}

type server struct {
	cfg serverConfig
}

// itemsResponse is the body of GET /items.
type itemsResponse struct {
	Page  paginator.Summary    `json:"page"`
	Items []Item               `json:"items"`
	Links []paginator.PageLink `json:"links"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newServer(cfg serverConfig) *server {
	return &server{cfg: cfg}
}

func (s *server) routes() http.Handler {
	decorators := []middleware.Decorator{
		middleware.AccessLog(s.cfg.Logger),
		middleware.Metrics(),
	}
	if s.cfg.Limiter != nil {
		decorators = append(decorators, middleware.FromMiddleware(s.cfg.Limiter.Middleware()))
	}

	mux := http.NewServeMux()
	mux.Handle("GET /items", middleware.Handler(
		middleware.Decorate(s.itemsView, decorators...),
		middleware.WithHandlerLogger(s.cfg.Logger),
	))
	mux.HandleFunc("GET /health", healthHandler)
	mux.HandleFunc("GET /ready", s.readyHandler)
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Gatherer, promhttp.HandlerOpts{}))
	return mux
}

// itemsView renders the requested page. Malformed or out-of-range page
// numbers are clamped rather than rejected.
func (s *server) itemsView(r *http.Request) (*middleware.Response, error) {
	items, readErr := s.cfg.Source(r.Context())

	p, err := paginator.NewWithConfig(items, s.cfg.Pagination.Paginator(),
		paginator.WithLogger(s.cfg.Logger))
	if err != nil {
		return nil, err
	}

	page, err := p.GetPage(r.URL.Query().Get("page"))
	if rerr := readErr(); rerr != nil {
		s.cfg.Logger.Warn().Err(rerr).Msg("Item list unavailable")
		return middleware.JSON(http.StatusServiceUnavailable, errorResponse{Error: "item list unavailable"})
	}
	if errors.Is(err, paginator.ErrInvalidPage) {
		// Only reachable when empty first pages are disallowed
		return middleware.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	}
	if err != nil {
		return nil, err
	}

	strip, err := p.ElidedPageRange(page.Number(), s.cfg.Pagination.OnEachSide, s.cfg.Pagination.OnEnds)
	if err != nil {
		return nil, err
	}

	body := itemsResponse{
		Page:  page.Summary(),
		Items: page.Items(),
		Links: slices.Collect(strip),
	}
	if body.Items == nil {
		body.Items = []Item{}
	}

	resp := middleware.NewTemplateResponse(http.StatusOK, func() ([]byte, error) {
		return json.Marshal(body)
	})
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *server) readyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.cfg.Pinger.Ping(ctx).Err(); err != nil {
		s.cfg.Logger.Warn().Err(err).Msg("Readiness check failed")
		http.Error(w, "Redis unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
