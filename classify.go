package ipscope

import (
	"fmt"
	"net/netip"
)

// classRule pairs a CIDR block with the classification it implies. Rules are
// evaluated in order; the first containing block wins.
type classRule struct {
	prefix netip.Prefix
	class  Classification
}

var (
	// classRulesV4 is evaluated top to bottom for IPv4 candidates. Precedence
	// follows loopback > private > reserved > multicast > broadcast; anything
	// unmatched is public.
	classRulesV4 = []classRule{
		{mustParsePrefix("127.0.0.0/8"), ClassLoopback},
		{mustParsePrefix("10.0.0.0/8"), ClassPrivate},
		{mustParsePrefix("172.16.0.0/12"), ClassPrivate},
		{mustParsePrefix("192.168.0.0/16"), ClassPrivate},
		{mustParsePrefix("0.0.0.0/8"), ClassReserved},
		{mustParsePrefix("169.254.0.0/16"), ClassReserved},
		{mustParsePrefix("240.0.0.0/4"), ClassReserved},
		{mustParsePrefix("255.255.255.255/32"), ClassReserved},
		{mustParsePrefix("224.0.0.0/4"), ClassMulticast},
		{mustParsePrefix("255.255.255.255/32"), ClassBroadcast},
	}

	// classRulesV6 mirrors classRulesV4 for IPv6 candidates. IPv4-mapped
	// addresses stay in the IPv6 family here, so ::ffff:0:0/96 classifies as
	// reserved instead of being unmapped first.
	classRulesV6 = []classRule{
		{mustParsePrefix("::1/128"), ClassLoopback},
		{mustParsePrefix("fc00::/7"), ClassPrivate},
		{mustParsePrefix("fe80::/10"), ClassPrivate},
		{mustParsePrefix("::/128"), ClassReserved},
		{mustParsePrefix("::ffff:0:0/96"), ClassReserved},
		{mustParsePrefix("2001:db8::/32"), ClassReserved},
		{mustParsePrefix("ff00::/8"), ClassMulticast},
	}
)

func mustParsePrefix(cidr string) netip.Prefix {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in CIDR %q: %v", cidr, err))
	}
	return prefix
}

// Classify assigns the range classification for a valid address. Every valid
// address maps to exactly one classification; invalid addresses map to the
// zero Classification.
func Classify(addr netip.Addr) Classification {
	if !addr.IsValid() {
		return 0
	}

	rules := classRulesV6
	if addr.Is4() {
		rules = classRulesV4
	}

	for _, rule := range rules {
		if rule.prefix.Contains(addr) {
			return rule.class
		}
	}

	return ClassPublic
}
