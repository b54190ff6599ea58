package ipscope

import "fmt"

// Sources sets the candidate scan order.
//
// Each name must be one of the Origin constants and may appear at most once.
// Because the first source to report an address keeps its metadata, the order
// given here decides which origin and confidence win for duplicates.
func Sources(origins ...string) Option {
	origins = cloneStrings(origins)

	return func(c *config) error {
		c.sources = cloneStrings(origins)
		return nil
	}
}

// MaxHeaderEntries caps how many entries a single header source may
// contribute. Entries beyond the cap are dropped and counted, not an error.
func MaxHeaderEntries(n int) Option {
	return func(c *config) error {
		c.maxHeaderEntries = n
		return nil
	}
}

// WithLogger sets the logger implementation used for warning events.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets a concrete metrics implementation.
//
// If previously configured, a metrics factory is disabled.
func WithMetrics(metrics Metrics) Option {
	return func(c *config) error {
		c.metrics = metrics
		c.metricsFactory = nil
		c.useMetricsFactory = false
		return nil
	}
}

// WithMetricsFactory configures a lazy metrics constructor.
//
// The factory is invoked only after option validation succeeds, so a failing
// factory never leaves half-registered collectors behind a misconfigured
// resolver.
func WithMetricsFactory(factory func() (Metrics, error)) Option {
	return func(c *config) error {
		if factory == nil {
			return fmt.Errorf("metrics factory cannot be nil")
		}

		c.metricsFactory = factory
		c.useMetricsFactory = true
		return nil
	}
}
