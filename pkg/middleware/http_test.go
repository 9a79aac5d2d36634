package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		view       View
		wantStatus int
		wantBody   string
		wantLog    bool
	}{
		{
			name: "plain",
			view: func(*http.Request) (*Response, error) {
				resp := NewResponse(http.StatusCreated, []byte("created"))
				resp.Header.Set("X-Test", "1")
				return resp, nil
			},
			wantStatus: http.StatusCreated,
			wantBody:   "created",
		},
		{
			name: "template",
			view: func(*http.Request) (*Response, error) {
				return NewTemplateResponse(0, func() ([]byte, error) { return []byte("lazy"), nil }), nil
			},
			wantStatus: http.StatusOK,
			wantBody:   "lazy",
		},
		{
			name: "view_error",
			view: func(*http.Request) (*Response, error) {
				return nil, errors.New("database down")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error",
			wantLog:    true,
		},
		{
			name: "render_error",
			view: func(*http.Request) (*Response, error) {
				return NewTemplateResponse(http.StatusOK, func() ([]byte, error) {
					return nil, errors.New("bad template")
				}), nil
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error",
			wantLog:    true,
		},
		{
			name:       "nil_response",
			view:       func(*http.Request) (*Response, error) { return nil, nil },
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := Handler(tt.view, WithHandlerLogger(zerolog.New(&buf)))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Errorf("Expected body %q, got %q", tt.wantBody, got)
			}
			if logged := strings.Contains(buf.String(), "View failed"); logged != tt.wantLog {
				t.Errorf("Expected logged=%v, got log %q", tt.wantLog, buf.String())
			}
		})
	}
}

func TestHandler_CopiesHeaders(t *testing.T) {
	view := func(*http.Request) (*Response, error) {
		resp := NewResponse(http.StatusOK, nil)
		resp.Header.Add("Vary", "Accept")
		resp.Header.Add("Vary", "Cookie")
		return resp, nil
	}

	rec := httptest.NewRecorder()
	Handler(view).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Values("Vary"); len(got) != 2 {
		t.Errorf("Expected two Vary headers, got %v", got)
	}
}

func TestFromHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "explicit_status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusTeapot)
				fmt.Fprint(w, "short and stout")
			},
			wantStatus: http.StatusTeapot,
			wantBody:   "short and stout",
		},
		{
			name: "implicit_ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "OK")
			},
			wantStatus: http.StatusOK,
			wantBody:   "OK",
		},
		{
			name:       "no_write",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := FromHandler(tt.handler)(httptest.NewRequest(http.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if string(resp.Body) != tt.wantBody {
				t.Errorf("Expected body %q, got %q", tt.wantBody, resp.Body)
			}
		})
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	view := AccessLog(logger)(okView("hello"))
	if _, err := view(httptest.NewRequest(http.MethodGet, "/items", nil)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"status_code":200`, `"path":"/items"`, `"bytes":5`, "Request served"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %s, got %s", want, out)
		}
	}
}

func TestAccessLog_TemplateLoggedOnRender(t *testing.T) {
	var buf bytes.Buffer
	view := AccessLog(zerolog.New(&buf))(func(*http.Request) (*Response, error) {
		return NewTemplateResponse(http.StatusOK, func() ([]byte, error) { return []byte("x"), nil }), nil
	})

	resp, err := view(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no log before render, got %s", buf.String())
	}

	if _, err := resp.Render(); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "Request served") {
		t.Errorf("Expected access log after render, got %s", buf.String())
	}
}

func TestMetrics(t *testing.T) {
	before := promtestutil.ToFloat64(HTTPResponses.WithLabelValues("200"))
	beforeErrors := promtestutil.ToFloat64(ViewErrors)

	ok := Metrics()(okView("ok"))
	if _, err := ok(httptest.NewRequest(http.MethodGet, "/", nil)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	errBoom := errors.New("boom")
	failing := Metrics()(func(*http.Request) (*Response, error) { return nil, errBoom })
	if _, err := failing(httptest.NewRequest(http.MethodGet, "/", nil)); !errors.Is(err, errBoom) {
		t.Errorf("Expected error to pass through, got %v", err)
	}

	if got := promtestutil.ToFloat64(HTTPResponses.WithLabelValues("200")) - before; got != 1 {
		t.Errorf("Expected 1 counted response, got %v", got)
	}
	if got := promtestutil.ToFloat64(ViewErrors) - beforeErrors; got != 1 {
		t.Errorf("Expected 1 counted error, got %v", got)
	}
}

func TestHandler_CountsServerErrors(t *testing.T) {
	before := promtestutil.ToFloat64(HTTPResponses.WithLabelValues("500"))

	view := Metrics()(func(*http.Request) (*Response, error) { return nil, errors.New("boom") })
	h := Handler(view, WithHandlerLogger(zerolog.Nop()))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	if got := promtestutil.ToFloat64(HTTPResponses.WithLabelValues("500")) - before; got != 1 {
		t.Errorf("Expected one counted 500, got %v", got)
	}
}
