package ipscope

import (
	"net/netip"
	"testing"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // empty means invalid
	}{
		{name: "plain IPv4", input: "192.168.1.1", want: "192.168.1.1"},
		{name: "IPv4 with port", input: "192.168.1.1:8080", want: "192.168.1.1"},
		{name: "plain IPv6", input: "2001:db8::1", want: "2001:db8::1"},
		{name: "bracketed IPv6", input: "[2001:db8::1]", want: "2001:db8::1"},
		{name: "bracketed IPv6 with port", input: "[2001:db8::1]:8080", want: "2001:db8::1"},
		{name: "whitespace trimmed", input: "  10.0.0.1  ", want: "10.0.0.1"},
		{name: "double quoted", input: `"1.2.3.4"`, want: "1.2.3.4"},
		{name: "single quoted", input: "'1.2.3.4'", want: "1.2.3.4"},
		{name: "quoted with port", input: `"1.2.3.4:443"`, want: "1.2.3.4"},
		{name: "IPv4-mapped stays IPv6", input: "::ffff:1.2.3.4", want: "::ffff:1.2.3.4"},
		{name: "zone suffix stripped", input: "fe80::1%eth0", want: "fe80::1"},

		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "hostname", input: "example.com"},
		{name: "hostname with port", input: "example.com:80"},
		{name: "rfc7239 unknown", input: "unknown"},
		{name: "rfc7239 obfuscated", input: "_hidden"},
		{name: "octet out of range", input: "999.1.1.1"},
		{name: "trailing dot", input: "1.2.3.4."},
		{name: "lone quote", input: `"`},
		{name: "empty quotes", input: `""`},
		{name: "unbalanced bracket", input: "[2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAddr(tt.input)

			if tt.want == "" {
				if got.IsValid() {
					t.Errorf("parseAddr(%q) = %s, want invalid", tt.input, got)
				}
				return
			}

			want := netip.MustParseAddr(tt.want)
			if got != want {
				t.Errorf("parseAddr(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestAddrVersion(t *testing.T) {
	tests := []struct {
		addr string
		want int
	}{
		{"1.2.3.4", 4},
		{"2001:db8::1", 6},
		{"::1", 6},
		{"::ffff:1.2.3.4", 6},
	}

	for _, tt := range tests {
		if got := addrVersion(netip.MustParseAddr(tt.addr)); got != tt.want {
			t.Errorf("addrVersion(%s) = %d, want %d", tt.addr, got, tt.want)
		}
	}
}
