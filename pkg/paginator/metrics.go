package paginator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PagesBuilt counts pages constructed by Page and GetPage.
	PagesBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webkit_paginator_pages_total",
			Help: "Total number of pages built",
		},
	)

	// InvalidPages counts rejected page numbers by kind.
	InvalidPages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webkit_paginator_invalid_pages_total",
			Help: "Total number of rejected page numbers",
		},
		[]string{"kind"}, // "not_an_integer", "empty_page"
	)

	// ClampedPages counts page numbers GetPage substituted.
	ClampedPages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webkit_paginator_clamped_pages_total",
			Help: "Total number of page numbers replaced by GetPage",
		},
		[]string{"kind"},
	)

	// UnorderedWarnings counts paginators built over unordered collections.
	UnorderedWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webkit_paginator_unordered_warnings_total",
			Help: "Total number of paginators created over unordered collections",
		},
	)
)

// metricKind maps an error kind to its label value.
func metricKind(kind error) string {
	if kind == ErrPageNotAnInteger {
		return "not_an_integer"
	}
	return "empty_page"
}
