package ipscope

import (
	"net/http"
	"testing"
)

// newTestRequest builds a request with the given peer address and header
// lines. Repeated names become separate header lines.
func newTestRequest(t *testing.T, remoteAddr string, headerLines ...[2]string) *http.Request {
	t.Helper()

	req := &http.Request{
		RemoteAddr: remoteAddr,
		Header:     make(http.Header),
	}
	for _, line := range headerLines {
		req.Header.Add(line[0], line[1])
	}

	return req
}

// candidateSummary is the comparable shape used in table tests.
type candidateSummary struct {
	Address    string
	Version    int
	Class      string
	Origin     string
	Confidence int
}

func summarize(candidates []Candidate) []candidateSummary {
	out := make([]candidateSummary, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, summarizeOne(c))
	}
	return out
}

func summarizeOne(c Candidate) candidateSummary {
	return candidateSummary{
		Address:    c.Address(),
		Version:    c.Version,
		Class:      c.Class.String(),
		Origin:     c.Origin,
		Confidence: c.Confidence,
	}
}

// recordingMetrics counts Metrics calls for assertions.
type recordingMetrics struct {
	candidates  map[string]int
	discarded   map[string]int
	resolutions map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		candidates:  make(map[string]int),
		discarded:   make(map[string]int),
		resolutions: make(map[string]int),
	}
}

func (m *recordingMetrics) RecordCandidate(origin string) { m.candidates[origin]++ }

func (m *recordingMetrics) RecordDiscarded(origin string) { m.discarded[origin]++ }

func (m *recordingMetrics) RecordResolution(result string) { m.resolutions[result]++ }
