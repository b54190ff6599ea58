// Package geo maps public IP addresses to coarse location records.
//
// The table is a static, process-wide set of well-known resolver and
// documentation ranges compiled into the binary. It is built once at init
// and never mutated, so lookups are safe for concurrent use without
// locking. This is a deliberately small static table, not a GeoIP
// database; addresses outside the table, and all non-public addresses,
// report not-found.
package geo
