package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ipscope/ipscope"
	"github.com/ipscope/ipscope/dnsinfo"
	"github.com/ipscope/ipscope/fingerprint"
	"github.com/ipscope/ipscope/geo"
	"github.com/ipscope/ipscope/subnet"
	"github.com/ipscope/ipscope/threat"
)

// Handler serves the dashboard and the JSON API.
type Handler struct {
	resolver *ipscope.Resolver
	dns      *dnsinfo.Client
	logger   *slog.Logger
}

// NewHandler wires the inspection pipeline into an http.Handler. dns may
// be nil to skip reverse lookups; registry may be nil to skip /metrics.
func NewHandler(resolver *ipscope.Resolver, dns *dnsinfo.Client, logger *slog.Logger, registry *prometheus.Registry) http.Handler {
	if logger == nil {
		logger = slog.New(discardHandler{})
	}

	h := &Handler{resolver: resolver, dns: dns, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.dashboard)
	mux.HandleFunc("GET /api/ip", h.apiIP)
	mux.HandleFunc("GET /api/ip/full", h.apiIPFull)
	mux.HandleFunc("GET /api/subnet", h.apiSubnet)
	mux.HandleFunc("GET /healthz", h.healthz)

	if registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	return chain(mux, requestID, recoverPanic(logger), accessLog(logger))
}

// candidateJSON is the wire shape of one detected address.
type candidateJSON struct {
	Address    string `json:"address"`
	Version    int    `json:"version"`
	Type       string `json:"type"`
	Source     string `json:"source"`
	Confidence int    `json:"confidence"`
}

type ipResponse struct {
	PrimaryIP      candidateJSON   `json:"primaryIP"`
	AllDetectedIPs []candidateJSON `json:"allDetectedIPs"`
}

type geoJSON struct {
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
	Org         string `json:"org"`
}

type threatJSON struct {
	VPNSuspected   bool     `json:"vpnSuspected"`
	TorSuspected   bool     `json:"torSuspected"`
	ProxySuspected bool     `json:"proxySuspected"`
	Score          int      `json:"score"`
	Indicators     []string `json:"indicators,omitempty"`
}

type fingerprintJSON struct {
	Browser    string `json:"browser"`
	OS         string `json:"os"`
	Device     string `json:"device"`
	Bot        bool   `json:"bot"`
	Confidence int    `json:"confidence"`
	Hash       string `json:"hash"`
}

type fullResponse struct {
	ipResponse
	Geo         *geoJSON        `json:"geo,omitempty"`
	ReverseDNS  []string        `json:"reverseDNS,omitempty"`
	Threat      threatJSON      `json:"threat"`
	Fingerprint fingerprintJSON `json:"fingerprint"`
}

type subnetResponse struct {
	Network        string `json:"network"`
	Broadcast      string `json:"broadcast"`
	FirstHost      string `json:"firstHost"`
	LastHost       string `json:"lastHost"`
	PrefixLen      int    `json:"prefixLen"`
	Mask           string `json:"mask"`
	TotalAddresses uint64 `json:"totalAddresses"`
	UsableHosts    uint64 `json:"usableHosts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) apiIP(w http.ResponseWriter, r *http.Request) {
	resolution, err := h.resolver.Resolve(r)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, buildIPResponse(resolution))
}

func (h *Handler) apiIPFull(w http.ResponseWriter, r *http.Request) {
	report, err := h.inspect(r)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) apiSubnet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ip := query.Get("ip")
	mask := query.Get("mask")

	if ip == "" || mask == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ip and mask query parameters are required"})
		return
	}

	info, err := subnet.Calculate(ip, mask)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, subnetResponse{
		Network:        info.Network.String(),
		Broadcast:      info.Broadcast.String(),
		FirstHost:      info.FirstHost.String(),
		LastHost:       info.LastHost.String(),
		PrefixLen:      info.PrefixLen,
		Mask:           info.Mask.String(),
		TotalAddresses: info.TotalAddresses,
		UsableHosts:    info.UsableHosts,
	})
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// inspect runs the full pipeline for one request.
func (h *Handler) inspect(r *http.Request) (fullResponse, error) {
	resolution, err := h.resolver.Resolve(r)
	if err != nil {
		return fullResponse{}, err
	}

	report := fullResponse{ipResponse: buildIPResponse(resolution)}

	primary := resolution.Primary.Addr
	if record, ok := geo.Lookup(primary); ok {
		report.Geo = &geoJSON{
			Country:     record.Country,
			CountryCode: record.CountryCode,
			City:        record.City,
			Org:         record.Org,
		}
	}

	if h.dns != nil {
		names, err := h.dns.ReverseLookup(r.Context(), primary)
		if err != nil && !errors.Is(err, dnsinfo.ErrNotFound) {
			h.logger.WarnContext(r.Context(), "reverse lookup failed",
				"addr", primary.String(), "error", err)
		}
		report.ReverseDNS = names
	}

	report.Threat = buildThreat(r, resolution, report.ReverseDNS)
	report.Fingerprint = buildFingerprint(r)

	return report, nil
}

func (h *Handler) writeResolveError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ipscope.ErrNoAddressDetected) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "unable to determine client IP"})
		return
	}

	h.logger.ErrorContext(r.Context(), "resolution failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func buildIPResponse(resolution ipscope.Resolution) ipResponse {
	candidates := make([]candidateJSON, 0, len(resolution.Candidates))
	for _, candidate := range resolution.Candidates {
		candidates = append(candidates, candidateJSON{
			Address:    candidate.Address(),
			Version:    candidate.Version,
			Type:       candidate.Class.String(),
			Source:     candidate.Origin,
			Confidence: candidate.Confidence,
		})
	}

	return ipResponse{
		PrimaryIP: candidateJSON{
			Address:    resolution.Primary.Address(),
			Version:    resolution.Primary.Version,
			Type:       resolution.Primary.Class.String(),
			Source:     resolution.Primary.Origin,
			Confidence: resolution.Primary.Confidence,
		},
		AllDetectedIPs: candidates,
	}
}

// proxyRevealingHeaders feed the heuristic assessment when present.
var proxyRevealingHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"CF-Connecting-IP",
	"X-Cluster-Client-IP",
	"Forwarded",
	"Via",
	"X-Proxy-Id",
}

func buildThreat(r *http.Request, resolution ipscope.Resolution, reverseNames []string) threatJSON {
	in := threat.Input{ReverseNames: reverseNames}

	for _, name := range proxyRevealingHeaders {
		if r.Header.Get(name) != "" {
			in.ProxyHeaders = append(in.ProxyHeaders, name)
		}
	}

	for _, candidate := range resolution.Candidates {
		if candidate.Origin == ipscope.OriginSocket {
			in.SocketAddr = candidate.Addr
			continue
		}
		in.ForwardedAddrs = append(in.ForwardedAddrs, candidate.Addr)
	}

	assessment := threat.Assess(in)

	return threatJSON{
		VPNSuspected:   assessment.VPNSuspected,
		TorSuspected:   assessment.TorSuspected,
		ProxySuspected: assessment.ProxySuspected,
		Score:          assessment.Score,
		Indicators:     assessment.Indicators,
	}
}

func buildFingerprint(r *http.Request) fingerprintJSON {
	info := fingerprint.Analyze(r.UserAgent())

	return fingerprintJSON{
		Browser:    info.Browser,
		OS:         info.OS,
		Device:     info.Device,
		Bot:        info.Bot,
		Confidence: info.Confidence,
		Hash:       fingerprint.RequestHash(r),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
