package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"mode", "media_type"}, // mode: "item", "user"
	)

	NeighborSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neighbor_search_duration_seconds",
			Help:    "Duration of nearest-neighbour searches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	NeighborCandidatesScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "neighbor_candidates_scanned_total",
			Help: "Total number of candidate embeddings scanned by the exact engine",
		},
	)

	// Enrichment Metrics
	EnrichmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrichment_failures_total",
			Help: "Total number of metadata lookups that failed or timed out",
		},
	)

	SkippedSourceItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_skipped_sources_total",
			Help: "Total number of liked items skipped for lack of a stored embedding",
		},
	)
)
