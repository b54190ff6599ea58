package fingerprint

import (
	"fmt"
	"hash/fnv"
	"net/http"
)

// hashedHeaders are the negotiation headers folded into the request hash,
// in a fixed order so the hash is stable across requests from the same
// client configuration.
var hashedHeaders = []string{
	"User-Agent",
	"Accept",
	"Accept-Language",
	"Accept-Encoding",
}

// RequestHash returns a stable 64-bit FNV-1a hash of the client's
// User-Agent and Accept* negotiation headers, hex-encoded. Two requests
// from the same browser configuration hash the same; the hash carries no
// information about the client address.
func RequestHash(r *http.Request) string {
	if r == nil {
		return HashValues(nil)
	}

	values := make([]string, 0, len(hashedHeaders))
	for _, name := range hashedHeaders {
		values = append(values, r.Header.Get(name))
	}

	return HashValues(values)
}

// HashValues hashes an ordered list of header values. Values are length-
// delimited so ("ab","c") and ("a","bc") do not collide.
func HashValues(values []string) string {
	h := fnv.New64a()
	for _, v := range values {
		fmt.Fprintf(h, "%d:%s;", len(v), v)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
