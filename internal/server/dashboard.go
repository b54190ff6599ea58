package server

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/ipscope/ipscope"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// dashboardData feeds the dashboard template. Empty is set when no
// client address could be determined at all.
type dashboardData struct {
	Empty  bool
	Report fullResponse
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{}

	report, err := h.inspect(r)
	switch {
	case errors.Is(err, ipscope.ErrNoAddressDetected):
		data.Empty = true
	case err != nil:
		h.logger.ErrorContext(r.Context(), "dashboard inspection failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		data.Report = report
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		h.logger.ErrorContext(r.Context(), "dashboard render failed", "error", err)
	}
}
