// Package ipscope resolves client IP candidates from HTTP request metadata and
// classifies them for downstream analysis.
//
// Unlike a trust-chain extractor that picks a single address and rejects the
// rest, ipscope collects every address advertised by the transport peer and
// common proxy headers, tags each one with its origin and a heuristic
// confidence score, classifies it against well-known address ranges, and then
// selects a primary candidate for the request.
//
// # Sources
//
// Candidates are gathered from a fixed, ordered set of sources:
//
//   - The transport peer address (Request.RemoteAddr)
//   - X-Forwarded-For (comma-separated, client-to-proxy order)
//   - X-Real-IP
//   - CF-Connecting-IP
//   - X-Cluster-Client-IP
//   - Forwarded (RFC 7239 for= parameters)
//
// Values that fail IP-literal validation are dropped without failing the
// resolution. Duplicate addresses keep the metadata of their first occurrence,
// so source order decides which origin and confidence win.
//
// # Basic Usage
//
//	resolver, err := ipscope.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resolution, err := resolver.Resolve(req)
//	if err != nil {
//	    // errors.Is(err, ipscope.ErrNoAddressDetected) when nothing usable was found
//	    return
//	}
//
//	fmt.Printf("client: %s (%s, confidence %d)\n",
//	    resolution.Primary.Address(), resolution.Primary.Origin, resolution.Primary.Confidence)
//
// # Primary Selection
//
// The primary candidate is the highest-confidence candidate classified as
// public; ties keep extraction order. When no public candidate exists, the
// highest-confidence candidate overall is reported instead of nothing.
//
// # Observability
//
// Logging and metrics are optional. The Logger interface mirrors slog's
// WarnContext signature so *slog.Logger can be passed directly, and the
// Metrics interface has a Prometheus adapter in
// github.com/ipscope/ipscope/prometheus:
//
//	metrics, _ := ipscopeprom.New()
//
//	resolver, err := ipscope.New(
//	    ipscope.WithLogger(slog.Default()),
//	    ipscope.WithMetrics(metrics),
//	)
//
// # Trust Caveats
//
// Every header source is self-reported by whatever sits in front of the
// service. The per-origin confidence scores encode common deployment
// assumptions (CF-Connecting-IP is trusted most because a specific vendor sets
// it), not verified facts. Deployments not behind that vendor should strip the
// header at their edge.
//
// # Thread Safety
//
// Resolver instances are safe for concurrent use. They are typically created
// once at application startup and reused across all requests.
package ipscope
