// internal/adapters/in/http/handlers/category_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"tiendapos/internal/adapters/in/http/middleware"
	"tiendapos/internal/application/usecase"
)

// CategoryHandler serves /categories endpoints.
type CategoryHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCategoryHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		writeError(w, http.StatusNotFound, "not_found")
	}
}

// GET /categories — empty list on store failure.
func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	items := h.uc.ListCategories(r.Context())
	out := make([]categoryDTO, 0, len(items))
	for _, c := range items {
		out = append(out, toCategoryDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// POST /categories  (admin / inventory)
func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	prof, ok := middleware.ProfileFrom(r.Context())
	if !ok || !prof.Role.CanEditCatalog() {
		writeError(w, http.StatusForbidden, "catalog management requires admin or inventory role")
		return
	}
	var in struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	c, err := h.uc.CreateCategory(r.Context(), in.Name)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryDTO(c))
}
