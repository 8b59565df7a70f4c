// Package metrics exports placement and HTTP events as Prometheus metrics.
//
// A [Metrics] value implements both observability.PlacementHooks and
// observability.HTTPHooks; register it once at startup:
//
//	m, err := metrics.New(prometheus.DefaultRegisterer)
//	if err != nil {
//	    return err
//	}
//	observability.SetPlacementHooks(m)
//	observability.SetHTTPHooks(m)
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/tiledock/pkg/observability"
)

const namespace = "tiledock"

// Decision outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
	OutcomeNewGroup = "new_group"
)

// Metrics holds the registered collectors.
type Metrics struct {
	decisions        *prometheus.CounterVec
	decisionDuration *prometheus.HistogramVec
	eligible         prometheus.Histogram
	panels           *prometheus.CounterVec
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	inFlight         prometheus.Gauge
}

var (
	_ observability.PlacementHooks = (*Metrics)(nil)
	_ observability.HTTPHooks      = (*Metrics)(nil)
)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "placement_decisions_total",
				Help:      "Placement decisions by direction and outcome.",
			},
			[]string{"direction", "outcome"},
		),
		decisionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "placement_decision_duration_seconds",
				Help:      "Time spent selecting a target group.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
			},
			[]string{"direction"},
		),
		eligible: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "placement_eligible_groups",
				Help:      "Number of eligible groups seen per decision.",
				Buckets:   prometheus.LinearBuckets(0, 1, 10),
			},
		),
		panels: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panels_added_total",
				Help:      "Create-panel commands by result.",
			},
			[]string{"result"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP API requests by route and status code.",
			},
			[]string{"method", "route", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP API request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "HTTP API requests currently being served.",
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.decisions, m.decisionDuration, m.eligible, m.panels,
		m.requests, m.requestDuration, m.inFlight,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// OnDecision implements observability.PlacementHooks.
func (m *Metrics) OnDecision(_ context.Context, direction, target string, matched bool, eligible, _ int, duration time.Duration) {
	m.decisions.WithLabelValues(direction, outcome(target, matched)).Inc()
	m.decisionDuration.WithLabelValues(direction).Observe(duration.Seconds())
	m.eligible.Observe(float64(eligible))
}

func outcome(target string, matched bool) string {
	switch {
	case target == "":
		return OutcomeNewGroup
	case matched:
		return OutcomeMatched
	default:
		return OutcomeFallback
	}
}

// OnPanelAdded implements observability.PlacementHooks.
func (m *Metrics) OnPanelAdded(_ context.Context, _, _ string, newGroup bool, err error) {
	result := "existing_group"
	switch {
	case err != nil:
		result = "error"
	case newGroup:
		result = OutcomeNewGroup
	}
	m.panels.WithLabelValues(result).Inc()
}

// OnRequest implements observability.HTTPHooks.
func (m *Metrics) OnRequest(context.Context, string, string) {
	m.inFlight.Inc()
}

// OnResponse implements observability.HTTPHooks.
func (m *Metrics) OnResponse(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	m.inFlight.Dec()
	m.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
