package middleware

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/Sternrassler/go-webkit/pkg/logging"
	"github.com/rs/zerolog"
)

// HandlerOption customizes the http.Handler built by Handler.
type HandlerOption func(*viewHandler)

// WithHandlerLogger sets the logger used for view failures.
func WithHandlerLogger(logger zerolog.Logger) HandlerOption {
	return func(h *viewHandler) { h.logger = logger }
}

type viewHandler struct {
	view   View
	logger zerolog.Logger
}

// Handler adapts a View to http.Handler. Template responses are rendered
// before writing. View and render errors produce a 500, are logged and are
// counted in HTTPResponses; Metrics never sees them as responses.
func Handler(view View, opts ...HandlerOption) http.Handler {
	h := &viewHandler{
		view:   view,
		logger: logging.NewLogger("middleware"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *viewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp, err := h.view(r)
	if err == nil && resp != nil && !resp.IsRendered() {
		resp, err = resp.Render()
	}
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("View failed")
		HTTPResponses.WithLabelValues(strconv.Itoa(http.StatusInternalServerError)).Inc()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if _, err := w.Write(resp.Body); err != nil {
		h.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Failed to write response")
	}
}

// FromHandler adapts an http.Handler to a View by recording what it writes.
func FromHandler(handler http.Handler) View {
	return func(r *http.Request) (*Response, error) {
		rec := &recorder{header: make(http.Header)}
		handler.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		resp := NewResponse(rec.status, rec.body.Bytes())
		resp.Header = rec.header
		return resp, nil
	}
}

type recorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (rec *recorder) Header() http.Header { return rec.header }

func (rec *recorder) WriteHeader(status int) {
	if rec.status == 0 {
		rec.status = status
	}
}

func (rec *recorder) Write(p []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.body.Write(p)
}
