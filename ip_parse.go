package ipscope

import (
	"net"
	"net/netip"
	"strings"
)

// parseAddr turns one raw header or socket value into an IP address. It
// tolerates the decorations that show up in the wild:
//
//   - surrounding whitespace: "  203.0.113.5  "
//   - port suffixes: "203.0.113.5:443" or "[2001:db8::1]:8080"
//   - quoted values: "\"203.0.113.5\"" or "'203.0.113.5'"
//   - IPv6 brackets without a port: "[2001:db8::1]"
//
// Anything left over must be a syntactically valid IPv4 or IPv6 literal; the
// returned address is invalid (IsValid() == false) otherwise. RFC 7239
// obfuscated identifiers ("unknown", "_hidden") are not literals and fail
// here.
func parseAddr(raw string) netip.Addr {
	s := strings.TrimSpace(raw)
	if s == "" {
		return netip.Addr{}
	}

	s = stripWrapping(s, '"', '"')
	s = stripWrapping(s, '\'', '\'')
	if s == "" {
		return netip.Addr{}
	}

	// "host:port" and "[v6]:port" forms. SplitHostPort rejects bare IPv6
	// literals (too many colons), so plain v6 addresses pass through intact.
	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}

	s = stripWrapping(s, '[', ']')

	addr, _ := netip.ParseAddr(s)

	// Zones ("fe80::1%eth0") defeat prefix containment checks and carry no
	// meaning beyond the local link; drop them.
	if addr.Zone() != "" {
		addr = addr.WithZone("")
	}

	return addr
}

// stripWrapping removes one leading and one trailing delimiter, only when
// both are present.
func stripWrapping(s string, first, last byte) string {
	if len(s) < 2 || s[0] != first || s[len(s)-1] != last {
		return s
	}
	return s[1 : len(s)-1]
}

// addrVersion reports 4 or 6 for a valid address. IPv4-mapped IPv6 addresses
// count as version 6; they are not unmapped.
func addrVersion(addr netip.Addr) int {
	if addr.Is4() {
		return 4
	}
	return 6
}
