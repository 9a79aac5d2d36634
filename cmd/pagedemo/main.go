// Command pagedemo serves a Redis-backed list through the paginator.
//
// Usage:
//
//	pagedemo seed --count 250
//	pagedemo serve --config webkit.yaml
//
// Endpoints:
//
//	GET /items?page=N  JSON page with navigation metadata and an elided page strip
//	GET /health        Liveness
//	GET /ready         Redis reachability
//	GET /metrics       Prometheus metrics
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
