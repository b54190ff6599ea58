package ipscope

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
)

// Resolver gathers, classifies, and ranks client IP candidates from HTTP
// requests and framework-agnostic peer input.
//
// Resolver instances are safe for concurrent reuse.
type Resolver struct {
	config *config
}

// New creates a Resolver from zero or more Option builders.
func New(opts ...Option) (*Resolver, error) {
	cfg, err := configFromOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Resolver{config: cfg}, nil
}

// Resolve gathers candidates for the request and selects the primary one.
//
// Malformed header values are dropped silently; Resolve fails only when no
// source produced a single usable candidate, in which case the error wraps
// ErrNoAddressDetected.
func (r *Resolver) Resolve(req *http.Request) (Resolution, error) {
	return r.ResolvePeer(inputFromRequest(req))
}

// ResolvePeer is Resolve for callers without an *http.Request.
func (r *Resolver) ResolvePeer(input PeerInput) (Resolution, error) {
	ctx := input.context()
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}

	c := &collector{
		resolver: r,
		ctx:      ctx,
		seen:     make(map[netip.Addr]struct{}, 4),
	}

	headers := input.headers()
	for _, origin := range r.config.sources {
		r.scanSource(c, origin, input.RemoteAddr, headers)
	}

	if len(c.candidates) == 0 {
		r.config.metrics.RecordResolution(ResolutionEmpty)
		r.config.logger.WarnContext(ctx, "no usable client address in request",
			"event", eventEmptyResolution,
			"remote_addr", input.RemoteAddr,
		)
		return Resolution{}, ErrNoAddressDetected
	}

	r.config.metrics.RecordResolution(ResolutionOK)

	return Resolution{
		Candidates: c.candidates,
		Primary:    selectPrimary(c.candidates),
	}, nil
}

// ResolveAddr resolves only the primary candidate for the request.
func (r *Resolver) ResolveAddr(req *http.Request) (Candidate, error) {
	resolution, err := r.Resolve(req)
	if err != nil {
		return Candidate{}, err
	}

	return resolution.Primary, nil
}

// ResolveWithOptions is a one-shot convenience helper.
//
// It constructs a temporary resolver from opts and resolves candidates for r.
func ResolveWithOptions(r *http.Request, opts ...Option) (Resolution, error) {
	resolver, err := New(opts...)
	if err != nil {
		return Resolution{}, err
	}

	return resolver.Resolve(r)
}

// selectPrimary picks the best-guess client address from a non-empty
// candidate list.
//
// A publicly routable candidate always beats a private or reserved one, even
// at lower nominal confidence: a proxy header claiming 10.0.0.1 is useless
// for geolocation while any public address is not. Within a partition the
// highest confidence wins, with extraction order breaking ties. When nothing
// is public, the highest-confidence candidate overall is still reported
// rather than nothing.
func selectPrimary(candidates []Candidate) Candidate {
	if len(candidates) == 1 {
		return candidates[0]
	}

	bestPublic := -1
	bestAny := 0

	for i, candidate := range candidates {
		if candidate.Confidence > candidates[bestAny].Confidence {
			bestAny = i
		}

		if candidate.Class != ClassPublic {
			continue
		}

		if bestPublic == -1 || candidate.Confidence > candidates[bestPublic].Confidence {
			bestPublic = i
		}
	}

	if bestPublic >= 0 {
		return candidates[bestPublic]
	}

	return candidates[bestAny]
}

// collector accumulates validated candidates for a single resolution,
// de-duplicating by normalized address as it goes.
type collector struct {
	resolver   *Resolver
	ctx        context.Context
	seen       map[netip.Addr]struct{}
	candidates []Candidate
}

// add validates one raw value and, when it parses, appends a candidate. The
// first occurrence of an address wins; later duplicates are dropped no matter
// which source produced them.
func (c *collector) add(origin, raw string, confidence int) {
	cfg := c.resolver.config

	addr := parseAddr(raw)
	if !addr.IsValid() {
		cfg.metrics.RecordDiscarded(origin)
		cfg.logger.WarnContext(c.ctx, "discarded value that is not an IP literal",
			"event", eventDiscardedValue,
			"origin", origin,
			"value", raw,
		)
		return
	}

	if _, duplicate := c.seen[addr]; duplicate {
		return
	}
	c.seen[addr] = struct{}{}

	cfg.metrics.RecordCandidate(origin)
	c.candidates = append(c.candidates, Candidate{
		Addr:       addr,
		Version:    addrVersion(addr),
		Class:      Classify(addr),
		Origin:     origin,
		Confidence: confidence,
	})
}

func (c *collector) capped(origin string) {
	cfg := c.resolver.config
	cfg.logger.WarnContext(c.ctx, "header entries beyond cap dropped",
		"event", eventEntriesCapped,
		"origin", origin,
		"max_entries", cfg.maxHeaderEntries,
	)
}

func (c *collector) malformedForwarded(dropped int) {
	cfg := c.resolver.config
	cfg.metrics.RecordDiscarded(OriginForwarded)
	cfg.logger.WarnContext(c.ctx, "skipped malformed Forwarded elements",
		"event", eventMalformedForwarded,
		"origin", OriginForwarded,
		"dropped", dropped,
	)
}
