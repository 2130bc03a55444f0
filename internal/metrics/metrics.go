// Package metrics defines the Prometheus instruments the service exports.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return registerCounter(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	}))
}

// NewNotifyRetriesTotal returns a Prometheus counter for retry attempts performed by the notify gateway
func NewNotifyRetriesTotal() prometheus.Counter {
	return registerCounter(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_retries_total",
		Help: "Total number of retry attempts performed by the notify gateway",
	}))
}

// NewAlertsSentTotal returns a Prometheus counter for alerts created and fanned out
func NewAlertsSentTotal() prometheus.Counter {
	return registerCounter(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alerts_sent_total",
		Help: "Total number of alerts created and fanned out to donors",
	}))
}

// NewNotifyDeliveriesTotal returns a Prometheus counter vector for notify outcomes, labeled by result
func NewNotifyDeliveriesTotal() *prometheus.CounterVec {
	return registerCounterVec(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_deliveries_total",
		Help: "Total number of per-donor notify attempts by outcome",
	}, []string{"outcome"}))
}

// NewMatchesComputedTotal returns a Prometheus counter for match records produced by the match finder
func NewMatchesComputedTotal() prometheus.Counter {
	return registerCounter(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "matches_computed_total",
		Help: "Total number of match records produced by the match finder",
	}))
}

// registerCounter registers c with the default registry, reusing the
// already-registered instance when a second container is built in tests.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func registerCounterVec(c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}
