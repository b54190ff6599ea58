package ipscope

import (
	"fmt"
)

const (
	// DefaultMaxHeaderEntries caps how many address entries a single header
	// source may contribute. This bounds memory and CPU spent on hostile
	// requests carrying absurdly long X-Forwarded-For or Forwarded lists.
	// Real proxy chains rarely exceed 5-10 entries.
	DefaultMaxHeaderEntries = 100
)

// Option configures a Resolver.
//
// Construct options using package-provided option builder functions.
type Option func(*config) error

// config holds resolver configuration state.
//
// It is mutated by Option functions during construction.
type config struct {
	sources          []string
	maxHeaderEntries int

	logger  Logger
	metrics Metrics

	metricsFactory    func() (Metrics, error)
	useMetricsFactory bool
}

// defaultSources is the canonical scan order. Order matters only for
// de-duplication: the first source to report an address keeps its metadata.
var defaultSources = []string{
	OriginSocket,
	OriginForwardedFor,
	OriginRealIP,
	OriginCFConnectingIP,
	OriginClusterClientIP,
	OriginForwarded,
}

func knownOrigin(name string) bool {
	switch name {
	case OriginSocket, OriginForwardedFor, OriginRealIP,
		OriginCFConnectingIP, OriginClusterClientIP, OriginForwarded:
		return true
	default:
		return false
	}
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}

func defaultConfig() *config {
	return &config{
		sources:          cloneStrings(defaultSources),
		maxHeaderEntries: DefaultMaxHeaderEntries,
		logger:           noopLogger{},
		metrics:          noopMetrics{},
	}
}

func applyOptions(c *config, opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}

func configFromOptions(opts ...Option) (*config, error) {
	cfg := defaultConfig()

	if err := applyOptions(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.useMetricsFactory {
		metrics, err := cfg.metricsFactory()
		if err != nil {
			return nil, err
		}
		cfg.metrics = metrics
	}

	return cfg, nil
}

func (c *config) validate() error {
	if len(c.sources) == 0 {
		return fmt.Errorf("at least one candidate source is required")
	}

	seen := make(map[string]struct{}, len(c.sources))
	for _, source := range c.sources {
		if !knownOrigin(source) {
			return fmt.Errorf("%w: %q", ErrUnknownSource, source)
		}
		if _, duplicate := seen[source]; duplicate {
			return fmt.Errorf("duplicate candidate source %q", source)
		}
		seen[source] = struct{}{}
	}

	if c.maxHeaderEntries < 1 {
		return fmt.Errorf("max header entries must be at least 1, got %d", c.maxHeaderEntries)
	}

	if c.logger == nil {
		return fmt.Errorf("logger cannot be nil")
	}

	if c.metrics == nil {
		return fmt.Errorf("metrics cannot be nil")
	}

	if c.useMetricsFactory && c.metricsFactory == nil {
		return fmt.Errorf("metrics factory cannot be nil")
	}

	return nil
}
