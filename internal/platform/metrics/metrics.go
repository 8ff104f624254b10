// Package metrics registers and exposes Prometheus metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	phttp "foodreview/internal/platform/net/http"
)

// Resolution outcomes for PlaceResolutions
const (
	OutcomeHit       = "hit"       // identity already existed
	OutcomeCreated   = "created"   // identity created by this call
	OutcomeRecovered = "recovered" // lost the creation race, returned the winner's row
)

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	PlaceResolutions *prometheus.CounterVec
	ReviewsWritten   prometheus.Counter
	FeedDuration     prometheus.Histogram
}

// New creates and registers all metrics on the default registry
func New() *Metrics {
	return &Metrics{
		PlaceResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "foodreview_place_resolutions_total",
			Help: "Restaurant identity resolutions by outcome",
		}, []string{"outcome"}),
		ReviewsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "foodreview_reviews_written_total",
			Help: "Reviews created or updated",
		}),
		FeedDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "foodreview_feed_assembly_seconds",
			Help:    "Personal feed assembly duration",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// FeedDurationTimer starts a timer that observes into the feed histogram
func (m *Metrics) FeedDurationTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.FeedDuration)
}

// Mount exposes the default registry on /metrics
func Mount(r phttp.Router) {
	r.Handle("/metrics", promhttp.Handler())
}
