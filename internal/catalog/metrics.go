package catalog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// refreshDuration tracks how long store refreshes take per entity.
	refreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_refresh_duration_seconds",
		Help:    "Time taken to refresh a catalog entity from the backend",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"entity"})

	// refreshErrors tracks failed refreshes per entity.
	refreshErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_refresh_errors_total",
		Help: "Total number of failed catalog refreshes by entity",
	}, []string{"entity"})
)

func observeRefresh(entity string, start time.Time, err error) {
	refreshDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
	if err != nil {
		refreshErrors.WithLabelValues(entity).Inc()
	}
}
