package notify

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedGateway counts per-donor delivery outcomes.
type InstrumentedGateway struct {
	next       Gateway
	deliveries *prometheus.CounterVec
}

// NewInstrumentedGateway wraps next with outcome counting; next must not be nil.
func NewInstrumentedGateway(next Gateway, deliveries *prometheus.CounterVec) *InstrumentedGateway {
	if next == nil {
		return nil
	}
	return &InstrumentedGateway{next: next, deliveries: deliveries}
}

// Notify delegates to the wrapped gateway and records the outcome.
func (g *InstrumentedGateway) Notify(ctx context.Context, donorID int64, p Payload) error {
	err := g.next.Notify(ctx, donorID, p)
	if g.deliveries != nil {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		g.deliveries.WithLabelValues(outcome).Inc()
	}
	return err
}
