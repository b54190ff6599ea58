package ipscope

import (
	"net/netip"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		addr string
		want Classification
	}{
		// IPv4 loopback
		{"127.0.0.1", ClassLoopback},
		{"127.255.255.254", ClassLoopback},
		// IPv4 private
		{"10.0.0.1", ClassPrivate},
		{"10.255.255.255", ClassPrivate},
		{"172.16.0.1", ClassPrivate},
		{"172.31.255.1", ClassPrivate},
		{"192.168.1.100", ClassPrivate},
		// IPv4 reserved
		{"0.0.0.0", ClassReserved},
		{"0.1.2.3", ClassReserved},
		{"169.254.1.1", ClassReserved},
		{"240.0.0.1", ClassReserved},
		// 255.255.255.255 sits in both 240.0.0.0/4 and the explicit /32;
		// reserved precedes broadcast, so reserved wins.
		{"255.255.255.255", ClassReserved},
		// IPv4 multicast
		{"224.0.0.1", ClassMulticast},
		{"239.255.255.255", ClassMulticast},
		// IPv4 public
		{"8.8.8.8", ClassPublic},
		{"1.1.1.1", ClassPublic},
		{"172.32.0.1", ClassPublic},
		{"11.0.0.1", ClassPublic},
		{"223.255.255.255", ClassPublic},
		// IPv6 loopback
		{"::1", ClassLoopback},
		// IPv6 private (unique-local and link-local)
		{"fc00::1", ClassPrivate},
		{"fd12:3456:789a::1", ClassPrivate},
		{"fe80::1", ClassPrivate},
		// IPv6 reserved
		{"::", ClassReserved},
		{"::ffff:8.8.8.8", ClassReserved},
		{"2001:db8::1", ClassReserved},
		// IPv6 multicast
		{"ff02::1", ClassMulticast},
		{"ff00::", ClassMulticast},
		// IPv6 public
		{"2606:4700:4700::1111", ClassPublic},
		{"2001:4860:4860::8888", ClassPublic},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			addr := netip.MustParseAddr(tt.addr)
			if got := Classify(addr); got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.addr, got, tt.want)
			}
		})
	}
}

func TestClassify_InvalidAddr(t *testing.T) {
	if got := Classify(netip.Addr{}); got != 0 {
		t.Errorf("Classify(zero) = %d, want 0", int(got))
	}
}

func TestClassify_FamiliesDoNotCross(t *testing.T) {
	// An IPv6 address must never match an IPv4 rule and vice versa; a public
	// IPv6 address whose leading bytes resemble an IPv4 private range stays
	// public.
	addr := netip.MustParseAddr("a00::1") // 0a00... echoes 10.0.0.0/8
	if got := Classify(addr); got != ClassPublic {
		t.Errorf("Classify(a00::1) = %s, want public", got)
	}
}

func TestClassification_String(t *testing.T) {
	tests := []struct {
		class Classification
		want  string
	}{
		{ClassPublic, "public"},
		{ClassPrivate, "private"},
		{ClassReserved, "reserved"},
		{ClassLoopback, "loopback"},
		{ClassMulticast, "multicast"},
		{ClassBroadcast, "broadcast"},
		{Classification(0), "unknown"},
		{Classification(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Classification(%d).String() = %q, want %q", int(tt.class), got, tt.want)
		}
	}
}

func TestClassification_MarshalText(t *testing.T) {
	got, err := ClassPublic.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(got) != "public" {
		t.Errorf("MarshalText() = %q, want %q", got, "public")
	}

	if _, err := Classification(0).MarshalText(); err == nil {
		t.Errorf("MarshalText() on zero value error = nil, want non-nil")
	}
}
