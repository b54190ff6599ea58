package threat

import (
	"fmt"
	"net/netip"
	"strings"
)

// Input carries the observations one request produced.
type Input struct {
	// SocketAddr is the address of the transport connection.
	SocketAddr netip.Addr

	// ForwardedAddrs are the addresses advertised by proxy headers, in
	// extraction order.
	ForwardedAddrs []netip.Addr

	// ProxyHeaders are the names of proxy-revealing headers present on
	// the request (X-Forwarded-For and friends).
	ProxyHeaders []string

	// ReverseNames are reverse-DNS names for the primary address. Empty
	// when the lookup failed or was skipped.
	ReverseNames []string
}

// Assessment is the heuristic verdict for one request.
type Assessment struct {
	VPNSuspected   bool
	TorSuspected   bool
	ProxySuspected bool

	// Score is 0-100; higher means more anonymization signals.
	Score int

	// Indicators names each signal that fired, for display.
	Indicators []string
}

// Keyword weights for reverse-DNS names. A hostname like
// "tor-exit-4.example.net" or "vpn.customer.example" is the single
// strongest signal this package has.
var (
	torKeywords = []string{"tor-exit", "torexit", "tor-relay", ".tor.", "exit-node", "exitnode"}
	vpnKeywords = []string{"vpn", "wireguard", "openvpn", "tunnel"}
	prxKeywords = []string{"proxy", "socks"}

	// Common hosting-provider reverse zones. A residential client rarely
	// resolves into one of these.
	datacenterKeywords = []string{
		"amazonaws.com",
		"googleusercontent.com",
		"azure.com",
		"cloudapp.net",
		"digitalocean.com",
		"linodeusercontent.com",
		"vultr",
		"hetzner",
		"ovh.net",
		"ovh.ca",
		"contabo",
		"leaseweb",
	}
)

// Assess folds the observations into suspicion flags and a score.
func Assess(in Input) Assessment {
	var a Assessment

	if len(in.ProxyHeaders) > 0 {
		a.ProxySuspected = true
		a.add(20, fmt.Sprintf("proxy headers present: %s", strings.Join(in.ProxyHeaders, ", ")))
	}

	if disagrees(in.SocketAddr, in.ForwardedAddrs) {
		a.ProxySuspected = true
		a.add(25, "socket address disagrees with forwarded addresses")
	}

	for _, name := range in.ReverseNames {
		lower := strings.ToLower(name)

		if keyword, ok := matchKeyword(lower, torKeywords); ok {
			a.TorSuspected = true
			a.add(35, fmt.Sprintf("reverse DNS %q matches Tor keyword %q", name, keyword))
		}

		if keyword, ok := matchKeyword(lower, vpnKeywords); ok {
			a.VPNSuspected = true
			a.add(35, fmt.Sprintf("reverse DNS %q matches VPN keyword %q", name, keyword))
		}

		if keyword, ok := matchKeyword(lower, prxKeywords); ok {
			a.ProxySuspected = true
			a.add(30, fmt.Sprintf("reverse DNS %q matches proxy keyword %q", name, keyword))
		}

		if keyword, ok := matchKeyword(lower, datacenterKeywords); ok {
			a.VPNSuspected = true
			a.add(20, fmt.Sprintf("reverse DNS %q resolves into hosting provider %q", name, keyword))
		}
	}

	if a.Score > 100 {
		a.Score = 100
	}

	return a
}

func (a *Assessment) add(weight int, indicator string) {
	a.Score += weight
	a.Indicators = append(a.Indicators, indicator)
}

// disagrees reports whether any forwarded address differs from the
// socket address. A proxy that appends the true client keeps the socket
// address out of the forwarded list entirely.
func disagrees(socket netip.Addr, forwarded []netip.Addr) bool {
	if !socket.IsValid() {
		return false
	}

	for _, addr := range forwarded {
		if addr.IsValid() && addr != socket {
			return true
		}
	}

	return false
}

func matchKeyword(name string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return keyword, true
		}
	}
	return "", false
}
