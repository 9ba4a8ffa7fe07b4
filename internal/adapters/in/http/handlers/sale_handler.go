// internal/adapters/in/http/handlers/sale_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tiendapos/internal/application/usecase"
)

// SaleHandler serves the sales log under /sales.
type SaleHandler struct {
	uc *usecase.SaleUsecase
}

func NewSaleHandler(uc *usecase.SaleUsecase) http.Handler {
	return &SaleHandler{uc: uc}
}

func (h *SaleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/sales"), "/")

	switch {
	case r.Method == http.MethodGet && id == "":
		h.list(w, r)
	case r.Method == http.MethodGet:
		h.get(w, r, id)
	default:
		writeError(w, http.StatusNotFound, "not_found")
	}
}

// GET /sales?limit=n — newest first, capped at the register's page size.
func (h *SaleHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	items, err := h.uc.Recent(r.Context(), limit)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSaleDTOs(items))
}

// GET /sales/{id}
func (h *SaleHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	s, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSaleDTO(s))
}
