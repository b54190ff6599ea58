package ipscope

// Metrics records candidate and resolution outcomes emitted by Resolver.
//
// Implementations must be safe for concurrent use; a single Resolver is
// typically shared across many goroutines.
type Metrics interface {
	// RecordCandidate is called when a source value passes validation and
	// becomes a candidate, labeled by origin.
	RecordCandidate(origin string)
	// RecordDiscarded is called when a source value fails validation and is
	// dropped, labeled by origin.
	RecordDiscarded(origin string)
	// RecordResolution is called once per Resolve call with the overall
	// result label ("ok" or "empty").
	RecordResolution(result string)
}

// noopMetrics is the default Metrics implementation when metrics are not
// explicitly configured.
type noopMetrics struct{}

func (noopMetrics) RecordCandidate(string) {}

func (noopMetrics) RecordDiscarded(string) {}

func (noopMetrics) RecordResolution(string) {}
