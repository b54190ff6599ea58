package prometheus

import (
	"errors"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/ipscope/ipscope"
)

// Metrics is a Prometheus-backed implementation of ipscope.Metrics.
type Metrics struct {
	candidatesTotal  *prom.CounterVec
	resolutionsTotal *prom.CounterVec
}

// WithMetrics returns an ipscope option that installs Prometheus-backed
// metrics using prom.DefaultRegisterer.
func WithMetrics() ipscope.Option {
	return withMetricsFactory(New)
}

// WithRegisterer returns an ipscope option that installs Prometheus-backed
// metrics using the provided registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used.
func WithRegisterer(registerer prom.Registerer) ipscope.Option {
	return withMetricsFactory(func() (*Metrics, error) {
		return NewWithRegisterer(registerer)
	})
}

// withMetricsFactory adapts a Metrics constructor into an ipscope.Option.
func withMetricsFactory(factory func() (*Metrics, error)) ipscope.Option {
	return ipscope.WithMetricsFactory(func() (ipscope.Metrics, error) {
		return factory()
	})
}

// New creates Metrics and registers its collectors on
// prom.DefaultRegisterer.
func New() (*Metrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates Metrics and registers its collectors on the given
// registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used. If the metrics are
// already registered, existing compatible collectors are reused.
func NewWithRegisterer(registerer prom.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	candidatesCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ip_candidates_total",
			Help: "Candidate values seen per origin (socket, forwarded-for, real-ip, cf-connecting-ip, cluster-client-ip, forwarded-rfc7239) and result (accepted, discarded).",
		},
		[]string{"origin", "result"},
	)
	resolutionsCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ip_resolutions_total",
			Help: "Completed client IP resolutions by result (ok, empty).",
		},
		[]string{"result"},
	)

	candidatesTotal, err := registerCounterVec(registerer, candidatesCollector, "ip_candidates_total")
	if err != nil {
		return nil, err
	}

	resolutionsTotal, err := registerCounterVec(registerer, resolutionsCollector, "ip_resolutions_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		candidatesTotal:  candidatesTotal,
		resolutionsTotal: resolutionsTotal,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordCandidate increments ip_candidates_total with result="accepted" for
// the provided origin.
func (m *Metrics) RecordCandidate(origin string) {
	m.candidatesTotal.WithLabelValues(origin, "accepted").Inc()
}

// RecordDiscarded increments ip_candidates_total with result="discarded" for
// the provided origin.
func (m *Metrics) RecordDiscarded(origin string) {
	m.candidatesTotal.WithLabelValues(origin, "discarded").Inc()
}

// RecordResolution increments ip_resolutions_total for the provided result
// label.
func (m *Metrics) RecordResolution(result string) {
	m.resolutionsTotal.WithLabelValues(result).Inc()
}
