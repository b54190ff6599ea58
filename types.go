package ipscope

import (
	"errors"
	"fmt"
	"net/netip"
)

var (
	// ErrNoAddressDetected is returned when no source produced a usable
	// candidate. Callers must surface this to the client rather than default
	// to a made-up address.
	ErrNoAddressDetected = errors.New("no client address detected")

	// ErrUnknownSource is returned when a configured source name is not one
	// of the Origin constants.
	ErrUnknownSource = errors.New("unknown candidate source")
)

// Origin names identify where a candidate address was discovered. They double
// as the wire-level "source" value in serialized results.
const (
	// OriginSocket is the transport-level peer address.
	OriginSocket = "socket"
	// OriginForwardedFor is an entry of the X-Forwarded-For header.
	OriginForwardedFor = "forwarded-for"
	// OriginRealIP is the X-Real-IP header.
	OriginRealIP = "real-ip"
	// OriginCFConnectingIP is the CF-Connecting-IP header.
	OriginCFConnectingIP = "cf-connecting-ip"
	// OriginClusterClientIP is the X-Cluster-Client-IP header.
	OriginClusterClientIP = "cluster-client-ip"
	// OriginForwarded is a for= parameter of the RFC 7239 Forwarded header.
	OriginForwarded = "forwarded-rfc7239"
)

// Classification buckets an address into one of the well-known range
// categories. The zero value is invalid; candidates always carry a concrete
// classification.
type Classification int

const (
	// Start at 1 so an accidentally zero-valued Classification is visibly
	// invalid rather than silently public.
	ClassPublic Classification = iota + 1
	ClassPrivate
	ClassReserved
	ClassLoopback
	ClassMulticast
	ClassBroadcast
)

// String returns the canonical text representation of c.
func (c Classification) String() string {
	switch c {
	case ClassPublic:
		return "public"
	case ClassPrivate:
		return "private"
	case ClassReserved:
		return "reserved"
	case ClassLoopback:
		return "loopback"
	case ClassMulticast:
		return "multicast"
	case ClassBroadcast:
		return "broadcast"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so classifications serialize
// as their canonical names.
func (c Classification) MarshalText() ([]byte, error) {
	s := c.String()
	if s == "unknown" {
		return nil, fmt.Errorf("invalid classification %d", int(c))
	}
	return []byte(s), nil
}

// Candidate is one IP address discovered for a request, tagged with where it
// came from and how much that origin is trusted.
//
// Candidates are only constructed from strings that parsed as valid IPv4 or
// IPv6 literals; Addr is always valid.
type Candidate struct {
	// Addr is the parsed, normalized address (brackets and ports already
	// stripped by the parser).
	Addr netip.Addr

	// Version is 4 or 6, derived from the address family.
	Version int

	// Class is the range classification of Addr.
	Class Classification

	// Origin is one of the Origin constants.
	Origin string

	// Confidence is a heuristic 0-100 trust score assigned per origin and,
	// for X-Forwarded-For, per position within the header.
	Confidence int
}

// Address returns the textual form of the candidate address.
func (c Candidate) Address() string {
	return c.Addr.String()
}

// Resolution is the outcome of resolving one request. It is built per request
// and carries no state beyond it.
type Resolution struct {
	// Candidates holds all unique addresses in extraction order. The first
	// occurrence of an address wins; later duplicates from other sources are
	// dropped together with their metadata.
	Candidates []Candidate

	// Primary is the selected best-guess client address. It is always one of
	// Candidates; Resolve never returns a Resolution with an empty candidate
	// list.
	Primary Candidate
}
