package ipscope

import (
	"context"
)

// Logger records noteworthy events emitted while resolving requests, such as
// discarded header values and empty resolutions.
//
// Implementations must be safe for concurrent use; a single Resolver is
// typically shared across many goroutines.
//
// The interface intentionally mirrors slog's WarnContext signature, so
// *slog.Logger can be used directly without an adapter. The context is the
// inbound request context and can carry tracing metadata.
type Logger interface {
	WarnContext(ctx context.Context, msg string, args ...any)
}

// noopLogger is the default Logger implementation when logging is not
// explicitly configured.
type noopLogger struct{}

func (noopLogger) WarnContext(context.Context, string, ...any) {}
