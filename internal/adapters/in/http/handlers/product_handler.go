// internal/adapters/in/http/handlers/product_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"tiendapos/internal/adapters/in/http/middleware"
	"tiendapos/internal/application/usecase"
)

// ProductHandler serves /products endpoints.
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

func NewProductHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/products"), "/")

	switch {
	case r.Method == http.MethodGet && id == "":
		h.list(w, r)
	case r.Method == http.MethodGet:
		h.get(w, r, id)
	case r.Method == http.MethodPost && id == "":
		h.create(w, r)
	case r.Method == http.MethodPut && id != "":
		h.update(w, r, id)
	case r.Method == http.MethodDelete && id != "":
		h.delete(w, r, id)
	default:
		writeError(w, http.StatusNotFound, "not_found")
	}
}

// GET /products
// Store failure degrades to an empty list; the POS keeps rendering.
func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProductDTOs(h.uc.ListProducts(r.Context())))
}

// GET /products/{id}
func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTO(p))
}

type productInput struct {
	SKU        *string `json:"sku"`
	Name       *string `json:"name"`
	SalePrice  *int    `json:"salePrice"`
	Stock      *int    `json:"stock"`
	CategoryID *string `json:"categoryId"`
}

// POST /products  (admin / inventory)
func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	if !h.canEdit(w, r) {
		return
	}
	var in productInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if in.Name == nil || in.SalePrice == nil {
		writeError(w, http.StatusBadRequest, "name and salePrice are required")
		return
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	p, err := h.uc.CreateProduct(r.Context(), usecase.CreateProductInput{
		SKU:        in.SKU,
		Name:       *in.Name,
		SalePrice:  *in.SalePrice,
		Stock:      stock,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductDTO(p))
}

// PUT /products/{id}  (admin / inventory)
func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	if !h.canEdit(w, r) {
		return
	}
	var in productInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	p, err := h.uc.UpdateProduct(r.Context(), id, usecase.UpdateProductInput{
		Name:       in.Name,
		SalePrice:  in.SalePrice,
		Stock:      in.Stock,
		SKU:        in.SKU,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTO(p))
}

// DELETE /products/{id}  (admin / inventory)
func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if !h.canEdit(w, r) {
		return
	}
	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// canEdit gates catalog mutations on the caller's role before any store call.
func (h *ProductHandler) canEdit(w http.ResponseWriter, r *http.Request) bool {
	prof, ok := middleware.ProfileFrom(r.Context())
	if !ok || !prof.Role.CanEditCatalog() {
		writeError(w, http.StatusForbidden, "catalog management requires admin or inventory role")
		return false
	}
	return true
}
