// Package fingerprint derives browser, OS, and device hints from a
// User-Agent string, plus a stable per-request hash.
//
// Detection is substring matching against an ordered rule table over the
// lowercased User-Agent. Order matters: Edge and Opera ship "chrome" in
// their User-Agent, Chrome ships "safari", so the more specific rules sit
// first. The aggregate confidence reflects how many facets matched, not
// any notion of spoof resistance — a User-Agent is self-reported and
// trivially forged.
package fingerprint
