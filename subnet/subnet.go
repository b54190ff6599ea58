package subnet

import (
	"errors"
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAddress is returned when the input is not an IPv4 literal.
	ErrInvalidAddress = errors.New("invalid IPv4 address")

	// ErrInvalidMask is returned when the mask is neither a valid dotted quad
	// nor a prefix length, or when a dotted quad is not contiguous.
	ErrInvalidMask = errors.New("invalid subnet mask")

	// ErrPrefixOutOfRange is returned for prefix lengths outside 0-32.
	ErrPrefixOutOfRange = errors.New("prefix length out of range")
)

// Info describes one IPv4 subnet.
type Info struct {
	// Network is the lowest address of the subnet.
	Network netip.Addr

	// Broadcast is the highest address of the subnet.
	Broadcast netip.Addr

	// FirstHost and LastHost bound the usable host range. When the subnet
	// has no usable hosts (/31 and /32), they report the network and
	// broadcast addresses themselves.
	FirstHost netip.Addr
	LastHost  netip.Addr

	// PrefixLen is the mask as a prefix length.
	PrefixLen int

	// Mask is the mask in dotted-quad form.
	Mask netip.Addr

	// TotalAddresses is 2^(32-PrefixLen).
	TotalAddresses uint64

	// UsableHosts is TotalAddresses minus network and broadcast, floored
	// at zero.
	UsableHosts uint64
}

// Calculate computes the subnet for an IPv4 address and mask. The mask may
// be a dotted quad ("255.255.255.0"), a bare prefix length ("24"), or a
// slash-prefixed one ("/24").
func Calculate(ip, mask string) (Info, error) {
	addr, err := parseIPv4(ip)
	if err != nil {
		return Info{}, err
	}

	prefixLen, err := ParseMask(mask)
	if err != nil {
		return Info{}, err
	}

	maskBits := prefixBits(prefixLen)
	addrBits := uint32FromAddr(addr)

	network := addrBits & maskBits
	broadcast := network | ^maskBits

	total := uint64(1) << (32 - prefixLen)
	usable := uint64(0)
	if total > 2 {
		usable = total - 2
	}

	info := Info{
		Network:        addrFromUint32(network),
		Broadcast:      addrFromUint32(broadcast),
		PrefixLen:      prefixLen,
		Mask:           addrFromUint32(maskBits),
		TotalAddresses: total,
		UsableHosts:    usable,
	}

	if usable > 0 {
		info.FirstHost = addrFromUint32(network + 1)
		info.LastHost = addrFromUint32(broadcast - 1)
	} else {
		info.FirstHost = info.Network
		info.LastHost = info.Broadcast
	}

	return info, nil
}

// ParseMask interprets a mask string as a prefix length. Accepted forms are
// a dotted quad, a bare decimal prefix length, and a slash-prefixed one.
func ParseMask(mask string) (int, error) {
	s := strings.TrimSpace(mask)
	if s == "" {
		return 0, fmt.Errorf("%w: empty mask", ErrInvalidMask)
	}

	if strings.Contains(s, ".") {
		addr, err := parseIPv4(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a dotted-quad mask", ErrInvalidMask, mask)
		}
		return MaskToPrefix(addr)
	}

	s = strings.TrimPrefix(s, "/")
	prefixLen, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a prefix length", ErrInvalidMask, mask)
	}

	if prefixLen < 0 || prefixLen > 32 {
		return 0, fmt.Errorf("%w: %d (want 0-32)", ErrPrefixOutOfRange, prefixLen)
	}

	return prefixLen, nil
}

// PrefixToMask converts a prefix length to its dotted-quad mask address.
func PrefixToMask(prefixLen int) (netip.Addr, error) {
	if prefixLen < 0 || prefixLen > 32 {
		return netip.Addr{}, fmt.Errorf("%w: %d (want 0-32)", ErrPrefixOutOfRange, prefixLen)
	}

	return addrFromUint32(prefixBits(prefixLen)), nil
}

// MaskToPrefix converts a dotted-quad mask address to its prefix length.
// The mask must be contiguous: ones followed only by zeros.
func MaskToPrefix(mask netip.Addr) (int, error) {
	if !mask.Is4() {
		return 0, fmt.Errorf("%w: %s is not IPv4", ErrInvalidMask, mask)
	}

	maskBits := uint32FromAddr(mask)
	prefixLen := bits.OnesCount32(maskBits)
	if maskBits != prefixBits(prefixLen) {
		return 0, fmt.Errorf("%w: %s is not contiguous", ErrInvalidMask, mask)
	}

	return prefixLen, nil
}

func parseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil || !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return addr, nil
}

// prefixBits returns the mask for a prefix length as a big-endian uint32.
func prefixBits(prefixLen int) uint32 {
	if prefixLen == 0 {
		return 0
	}
	return ^uint32(0) << (32 - prefixLen)
}

func uint32FromAddr(addr netip.Addr) uint32 {
	b := addr.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func addrFromUint32(v uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	})
}
