package service

import (
	"time"

	apperrors "cleaning-ops-backend/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cleaning",
		Subsystem: "assignment",
		Name:      "transitions_total",
		Help:      "Total number of claim/start/complete/decline attempts broken down by operation and outcome.",
	}, []string{"operation", "outcome"})

	claimDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cleaning",
		Subsystem: "assignment",
		Name:      "claim_duration_seconds",
		Help:      "Latency of claim transactions broken down by outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	bootstrapFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cleaning",
		Subsystem: "inventory_review",
		Name:      "bootstrap_failures_total",
		Help:      "Total number of draft inventory reviews that could not be created after a start.",
	})

	countsCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cleaning",
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Total number of list count cache lookups broken down by hit/miss.",
	}, []string{"result"})
)

func recordTransition(operation string, outcome apperrors.Outcome) {
	transitionsTotal.WithLabelValues(operation, string(outcome)).Inc()
}

func observeClaim(outcome apperrors.Outcome, elapsed time.Duration) {
	claimDuration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

func recordCacheRequest(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	countsCacheRequests.WithLabelValues(result).Inc()
}
