// Package threat makes heuristic guesses about whether a client sits
// behind a VPN, Tor, or another proxy.
//
// Every signal here is circumstantial: proxy headers on the request,
// disagreement between the socket address and forwarded addresses, and
// keywords in reverse-DNS names. The output is a set of suspicion flags
// and a 0-100 score, never a verdict. There is no threat-intelligence
// feed behind this package.
package threat
