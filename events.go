package ipscope

const (
	eventDiscardedValue     = "discarded_value"
	eventMalformedForwarded = "malformed_forwarded"
	eventEntriesCapped      = "entries_capped"
	eventEmptyResolution    = "empty_resolution"
)

// Resolution result labels passed to Metrics.RecordResolution.
const (
	ResolutionOK    = "ok"
	ResolutionEmpty = "empty"
)
