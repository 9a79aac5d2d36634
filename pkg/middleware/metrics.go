package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPResponses counts responses by status code
	HTTPResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webkit_http_responses_total",
			Help: "Total number of responses returned by decorated views",
		},
		[]string{"status"},
	)

	// ViewErrors counts errors and panics raised by decorated views
	ViewErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webkit_http_view_errors_total",
			Help: "Total number of errors raised by decorated views",
		},
	)
)

type metricsHooks struct{}

func (metricsHooks) ProcessError(*http.Request, error) *Response {
	ViewErrors.Inc()
	return nil
}

func (metricsHooks) ProcessResponse(_ *http.Request, resp *Response) *Response {
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	HTTPResponses.WithLabelValues(strconv.Itoa(status)).Inc()
	return nil
}

// Metrics counts responses and view errors. Errors are counted and passed
// through unchanged.
func Metrics() Decorator {
	return FromMiddleware(func(View) any { return metricsHooks{} })
}
