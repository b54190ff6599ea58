package ipscope

import "strings"

// forwardedForValues extracts the for= parameter of every element in the
// given RFC 7239 Forwarded header values, in wire order.
//
// Parsing is deliberately lenient: an element without a for parameter, with a
// duplicate for parameter, or too mangled to parse is skipped and counted in
// dropped, never fatal. The caller turns each returned value into a candidate
// or discards it when it is not an IP literal.
//
// At most maxValues values are returned; excess elements count as dropped.
func forwardedForValues(values []string, maxValues int) (vals []string, dropped int) {
	for _, value := range values {
		for _, element := range splitOutsideQuotes(value, ',') {
			forValue, ok := forwardedElementFor(element)
			if !ok {
				dropped++
				continue
			}

			if len(vals) >= maxValues {
				dropped++
				continue
			}

			vals = append(vals, forValue)
		}
	}

	return vals, dropped
}

// forwardedElementFor pulls the for= value out of a single Forwarded element
// ("for=1.2.3.4;proto=https"). Parameter names are case-insensitive; a
// duplicate for parameter makes the element ambiguous and it is rejected.
func forwardedElementFor(element string) (string, bool) {
	var forValue string
	found := false

	for _, param := range splitOutsideQuotes(element, ';') {
		eq := strings.IndexByte(param, '=')
		if eq <= 0 {
			continue
		}

		key := strings.TrimSpace(param[:eq])
		if !strings.EqualFold(key, "for") {
			continue
		}

		if found {
			return "", false
		}

		value := strings.TrimSpace(param[eq+1:])
		if strings.HasPrefix(value, `"`) {
			unquoted := stripWrapping(value, '"', '"')
			if unquoted == value {
				// Unbalanced quote; the element is mangled.
				return "", false
			}
			value = strings.TrimSpace(unquoted)
		}
		if value == "" {
			return "", false
		}

		forValue = value
		found = true
	}

	return forValue, found
}

// splitOutsideQuotes splits value on delim, ignoring delimiters inside
// double-quoted strings and honoring backslash escapes within them. An
// unterminated quote swallows the rest of the value into the final segment,
// which then fails downstream validation instead of aborting the scan.
// Empty segments are omitted.
func splitOutsideQuotes(value string, delim byte) []string {
	var segments []string
	start := 0
	inQuotes := false
	escaped := false

	flush := func(end int) {
		if segment := strings.TrimSpace(value[start:end]); segment != "" {
			segments = append(segments, segment)
		}
		start = end + 1
	}

	for i := 0; i < len(value); i++ {
		ch := value[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case ch == '\\' && inQuotes:
			escaped = true
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			flush(i)
		}
	}

	flush(len(value))
	return segments
}
