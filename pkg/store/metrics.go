package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOps tracks list operations by type
	StoreOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webkit_store_ops_total",
			Help: "Total number of Redis list operations",
		},
		[]string{"op"}, // "push", "len", "range", "delete"
	)

	// StoreErrors tracks list operation errors
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webkit_store_errors_total",
			Help: "Total number of Redis list operation errors",
		},
		[]string{"op"},
	)
)
