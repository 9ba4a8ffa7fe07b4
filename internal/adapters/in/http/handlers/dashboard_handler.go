// internal/adapters/in/http/handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"tiendapos/internal/application/query"
)

// DashboardHandler serves the staff dashboard read model at /dashboard.
type DashboardHandler struct {
	q *query.DashboardQuery
}

func NewDashboardHandler(q *query.DashboardQuery) http.Handler {
	return &DashboardHandler{q: q}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	sum, err := h.q.Summarize(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
