package geo

import (
	"fmt"
	"net/netip"
)

// rangeSet resolves an address to the record of its longest registered
// prefix, one bit-trie per address family.
type rangeSet struct {
	ipv4Root *trieNode
	ipv6Root *trieNode
}

type trieNode struct {
	children [2]*trieNode
	record   *Record
}

func buildTable(entries []rangeEntry) rangeSet {
	set := rangeSet{}

	for _, entry := range entries {
		prefix, err := netip.ParsePrefix(entry.cidr)
		if err != nil {
			panic(fmt.Sprintf("geo: bad range %q: %v", entry.cidr, err))
		}

		addr := prefix.Addr()
		record := entry.record

		if addr.Is4() {
			if set.ipv4Root == nil {
				set.ipv4Root = &trieNode{}
			}

			bytes := addr.As4()
			insertRange(set.ipv4Root, bytes[:], prefix.Bits(), &record)
			continue
		}

		if set.ipv6Root == nil {
			set.ipv6Root = &trieNode{}
		}

		bytes := addr.As16()
		insertRange(set.ipv6Root, bytes[:], prefix.Bits(), &record)
	}

	return set
}

func insertRange(root *trieNode, addr []byte, bits int, record *Record) {
	node := root
	for bitIndex := 0; bitIndex < bits; bitIndex++ {
		bit := addrBit(addr, bitIndex)
		child := node.children[bit]
		if child == nil {
			child = &trieNode{}
			node.children[bit] = child
		}
		node = child
	}

	node.record = record
}

func (s rangeSet) lookup(ip netip.Addr) (Record, bool) {
	if !ip.IsValid() {
		return Record{}, false
	}

	if ip.Is4() {
		if s.ipv4Root == nil {
			return Record{}, false
		}

		bytes := ip.As4()
		return trieLookup(s.ipv4Root, bytes[:])
	}

	if s.ipv6Root == nil {
		return Record{}, false
	}

	bytes := ip.As16()
	return trieLookup(s.ipv6Root, bytes[:])
}

// trieLookup walks as deep as the address allows and keeps the record of
// the deepest node that carries one.
func trieLookup(root *trieNode, addr []byte) (Record, bool) {
	node := root
	var best *Record

	for bitIndex := range len(addr) * 8 {
		if node.record != nil {
			best = node.record
		}

		node = node.children[addrBit(addr, bitIndex)]
		if node == nil {
			break
		}
	}

	if node != nil && node.record != nil {
		best = node.record
	}

	if best == nil {
		return Record{}, false
	}

	return *best, true
}

func addrBit(addr []byte, bitIndex int) int {
	byteIndex := bitIndex / 8
	shift := uint(7 - (bitIndex % 8))
	if ((addr[byteIndex] >> shift) & 1) == 1 {
		return 1
	}
	return 0
}
