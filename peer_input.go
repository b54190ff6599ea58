package ipscope

import (
	"context"
	"net/http"
)

// HeaderValues provides access to request header values by name.
//
// Implementations should return one slice entry per received header line.
// Header names are requested in canonical MIME format (for example
// "X-Forwarded-For").
//
// net/http's http.Header satisfies this interface directly.
type HeaderValues interface {
	Values(name string) []string
}

// HeaderValuesFunc adapts a function to the HeaderValues interface.
type HeaderValuesFunc func(name string) []string

// Values implements HeaderValues.
func (f HeaderValuesFunc) Values(name string) []string {
	if f == nil {
		return nil
	}

	return f(name)
}

// PeerInput provides framework-agnostic request data for resolution, for
// callers that do not hold an *http.Request (gRPC gateways, test harnesses,
// non-net/http frameworks).
//
// Context defaults to context.Background() when nil. A nil Headers behaves as
// a request without headers.
type PeerInput struct {
	Context    context.Context
	RemoteAddr string
	Headers    HeaderValues
}

func (in PeerInput) context() context.Context {
	if in.Context == nil {
		return context.Background()
	}

	return in.Context
}

func (in PeerInput) headers() HeaderValues {
	if in.Headers == nil {
		return emptyHeaders{}
	}

	return in.Headers
}

type emptyHeaders struct{}

func (emptyHeaders) Values(string) []string { return nil }

func inputFromRequest(r *http.Request) PeerInput {
	if r == nil {
		return PeerInput{}
	}

	in := PeerInput{
		Context:    r.Context(),
		RemoteAddr: r.RemoteAddr,
	}
	if r.Header != nil {
		in.Headers = r.Header
	}

	return in
}
