// Package metrics exposes Prometheus instrumentation for the matching engine
// queries: how often each query runs, how long it takes and how many
// candidates it scores.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	QueryMatches         = "matches"
	QuerySimilar         = "similar"
	QueryRecommendations = "recommendations"
)

var (
	// QueriesTotal counts engine queries by kind and outcome ("ok", "not_found", "rejected", "error").
	QueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skillexchange_engine_queries_total",
		Help: "Total number of matching engine queries",
	}, []string{"query", "outcome"})

	// QueryDuration records end-to-end query latency including the store fetch.
	QueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillexchange_engine_query_duration_seconds",
		Help:    "Matching engine query latency in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"query"})

	// CandidatesScored records the candidate pool size per query.
	CandidatesScored = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillexchange_engine_candidates_scored",
		Help:    "Number of candidates evaluated per query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"query"})

	// ResultsReturned records the result count per query after filtering.
	ResultsReturned = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillexchange_engine_results_returned",
		Help:    "Number of results returned per query",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	}, []string{"query"})
)

func init() {
	prometheus.MustRegister(
		QueriesTotal,
		QueryDuration,
		CandidatesScored,
		ResultsReturned,
	)
}

// ObserveQuery records one finished query.
func ObserveQuery(query, outcome string, started time.Time, candidates, results int) {
	QueriesTotal.WithLabelValues(query, outcome).Inc()
	QueryDuration.WithLabelValues(query).Observe(time.Since(started).Seconds())
	if candidates >= 0 {
		CandidatesScored.WithLabelValues(query).Observe(float64(candidates))
	}
	if results >= 0 {
		ResultsReturned.WithLabelValues(query).Observe(float64(results))
	}
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
