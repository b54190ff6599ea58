// Package dnsinfo performs reverse and forward DNS lookups for display.
//
// Lookups are best-effort: transient resolver failures are retried with
// capped exponential backoff, authoritative not-found answers are not.
// Every call is bounded by the caller's context plus a per-lookup
// timeout, so a slow resolver cannot stall a request handler.
package dnsinfo
