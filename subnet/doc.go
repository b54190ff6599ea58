// Package subnet computes IPv4 subnet boundaries from an address and a mask.
//
// A mask can be given either as a dotted quad ("255.255.255.0") or as a CIDR
// prefix length ("24" or "/24"). Prefix and mask conversions are exact
// inverses for every prefix length 0 through 32.
package subnet
