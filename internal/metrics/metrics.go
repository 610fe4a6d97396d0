// Package metrics exposes Prometheus counters for the directory API.
package metrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodfinder_searches_total",
		Help: "Global searches by kind (dropdown, quick)",
	}, []string{"kind"})
	EmptyResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodfinder_empty_results_total",
		Help: "Filters and searches that matched nothing",
	}, []string{"query"})
	UnavailableTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "foodfinder_unavailable_notices_total",
		Help: "Attempts to open a province without data",
	})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "foodfinder_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(EmptyResultsTotal)
	prometheus.MustRegister(UnavailableTotal)
	prometheus.MustRegister(RequestDurationMs)
}

// Handler serves the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }

// Observe records request durations by chi route pattern, so ids in the path
// do not create new series.
func Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		RequestDurationMs.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	})
}
