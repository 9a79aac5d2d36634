// Package metrics provides centralized Prometheus metrics registry for webkit.
// All metrics are defined in their respective packages (paginator, store,
// ratelimit, middleware) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by webkit.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the registry the demo server exposes on /metrics.
var Gatherer = prometheus.DefaultGatherer

// Names lists every metric family webkit registers.
var Names = []string{
	"webkit_paginator_pages_total",
	"webkit_paginator_invalid_pages_total",
	"webkit_paginator_clamped_pages_total",
	"webkit_paginator_unordered_warnings_total",
	"webkit_store_ops_total",
	"webkit_store_errors_total",
	"webkit_ratelimit_blocks_total",
	"webkit_ratelimit_errors_total",
	"webkit_http_responses_total",
	"webkit_http_view_errors_total",
}

// Metrics Documentation
//
// Paginator Metrics (pkg/paginator):
//   - webkit_paginator_pages_total (Counter): Pages built by Page and GetPage
//   - webkit_paginator_invalid_pages_total{kind} (Counter): Rejected page numbers (not_an_integer, empty_page)
//   - webkit_paginator_clamped_pages_total{kind} (Counter): Page numbers replaced by GetPage
//   - webkit_paginator_unordered_warnings_total (Counter): Paginators created over unordered collections
//
// Store Metrics (pkg/store):
//   - webkit_store_ops_total{op} (Counter): Redis list operations (push, len, range, delete)
//   - webkit_store_errors_total{op} (Counter): Failed Redis list operations
//
// Rate Limit Metrics (pkg/ratelimit):
//   - webkit_ratelimit_blocks_total (Counter): Requests rejected with 429
//   - webkit_ratelimit_errors_total (Counter): Redis errors while counting (request allowed)
//
// HTTP Metrics (pkg/middleware):
//   - webkit_http_responses_total{status} (Counter): Responses by status code
//   - webkit_http_view_errors_total (Counter): Errors and panics raised by views
//
// Example Prometheus Queries:
//
//   # Share of requests asking for a page that does not exist
//   sum(rate(webkit_paginator_clamped_pages_total[5m])) /
//   rate(webkit_paginator_pages_total[5m])
//
//   # Redis list error rate
//   sum(rate(webkit_store_errors_total[5m])) / sum(rate(webkit_store_ops_total[5m]))
//
//   # Rate limited requests
//   rate(webkit_ratelimit_blocks_total[5m])
//
//   # Server errors
//   rate(webkit_http_responses_total{status=~"5.."}[5m])
