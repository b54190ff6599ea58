package ipscope

// Header names scanned for candidate addresses.
const (
	headerForwardedFor    = "X-Forwarded-For"
	headerRealIP          = "X-Real-IP"
	headerCFConnectingIP  = "CF-Connecting-IP"
	headerClusterClientIP = "X-Cluster-Client-IP"
	headerForwarded       = "Forwarded"
)

// Per-origin confidence scores. These are heuristics about how trustworthy
// each origin tends to be, not verified facts: CF-Connecting-IP scores above
// the socket because a specific reverse-proxy vendor sets it, which only
// holds when the deployment actually sits behind that vendor.
const (
	confidenceSocket          = 70
	confidenceXFFFirst        = 90
	confidenceRealIP          = 85
	confidenceCFConnectingIP  = 95
	confidenceClusterClientIP = 80
	confidenceForwarded       = 75
)

// xffConfidence scores the X-Forwarded-For entry at the given 0-based
// position. The leftmost entry claims to be the originating client and scores
// highest; each hop to the right scores ten lower starting from 30, floored
// at 10.
func xffConfidence(index int) int {
	if index == 0 {
		return confidenceXFFFirst
	}
	return max(50-10*(index+1), 10)
}

// scanSource feeds every value the named origin offers into the collector.
// Unknown origins are impossible here; config validation rejects them.
func (r *Resolver) scanSource(c *collector, origin, remoteAddr string, headers HeaderValues) {
	switch origin {
	case OriginSocket:
		if remoteAddr != "" {
			c.add(OriginSocket, remoteAddr, confidenceSocket)
		}

	case OriginForwardedFor:
		r.scanForwardedFor(c, headers)

	case OriginRealIP:
		r.scanSingleHeader(c, headers, headerRealIP, OriginRealIP, confidenceRealIP)

	case OriginCFConnectingIP:
		r.scanSingleHeader(c, headers, headerCFConnectingIP, OriginCFConnectingIP, confidenceCFConnectingIP)

	case OriginClusterClientIP:
		r.scanSingleHeader(c, headers, headerClusterClientIP, OriginClusterClientIP, confidenceClusterClientIP)

	case OriginForwarded:
		r.scanForwarded(c, headers)
	}
}

// scanForwardedFor walks every X-Forwarded-For entry left to right. The entry
// index runs across repeated header lines, so a request carrying two header
// lines scores entries as one continuous chain.
func (r *Resolver) scanForwardedFor(c *collector, headers HeaderValues) {
	values := headers.Values(headerForwardedFor)
	if len(values) == 0 {
		return
	}

	index := 0
	for _, value := range values {
		for _, entry := range splitOutsideQuotes(value, ',') {
			if index >= r.config.maxHeaderEntries {
				c.capped(OriginForwardedFor)
				return
			}

			c.add(OriginForwardedFor, entry, xffConfidence(index))
			index++
		}
	}
}

// scanSingleHeader handles headers that carry exactly one address. Only the
// first header line is considered; repeats are a spoofing smell but extra
// lines are simply ignored rather than failing the request.
func (r *Resolver) scanSingleHeader(c *collector, headers HeaderValues, header, origin string, confidence int) {
	values := headers.Values(header)
	if len(values) == 0 || values[0] == "" {
		return
	}

	c.add(origin, values[0], confidence)
}

// scanForwarded extracts for= parameters from the RFC 7239 Forwarded header.
func (r *Resolver) scanForwarded(c *collector, headers HeaderValues) {
	values := headers.Values(headerForwarded)
	if len(values) == 0 {
		return
	}

	vals, dropped := forwardedForValues(values, r.config.maxHeaderEntries)
	if dropped > 0 {
		c.malformedForwarded(dropped)
	}

	for _, v := range vals {
		c.add(OriginForwarded, v, confidenceForwarded)
	}
}
