package metrics_test

import (
	"slices"
	"testing"

	"github.com/Sternrassler/go-webkit/pkg/metrics"
	"github.com/Sternrassler/go-webkit/pkg/middleware"
	"github.com/Sternrassler/go-webkit/pkg/paginator"
	"github.com/Sternrassler/go-webkit/pkg/store"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/Sternrassler/go-webkit/pkg/ratelimit"
)

func TestRegistry(t *testing.T) {
	if metrics.Registry == nil {
		t.Error("Registry should not be nil")
	}

	if metrics.Registry != prometheus.DefaultRegisterer {
		t.Error("Registry should be the default Prometheus registerer")
	}
	if metrics.Gatherer != prometheus.DefaultGatherer {
		t.Error("Gatherer should be the default Prometheus gatherer")
	}
}

func TestNames_Registered(t *testing.T) {
	// Vectors only show up once a label combination exists
	paginator.InvalidPages.WithLabelValues("empty_page")
	paginator.ClampedPages.WithLabelValues("empty_page")
	store.StoreOps.WithLabelValues("len")
	store.StoreErrors.WithLabelValues("len")
	middleware.HTTPResponses.WithLabelValues("200")

	families, err := metrics.Gatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	var gathered []string
	for _, f := range families {
		gathered = append(gathered, f.GetName())
	}

	for _, name := range metrics.Names {
		if !slices.Contains(gathered, name) {
			t.Errorf("Metric %s is documented but not registered", name)
		}
	}
}
