// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"tiendapos/internal/adapters/in/http/middleware"
	"tiendapos/internal/application/usecase"
)

// CartHandler serves the terminal cart session under /cart.
// The terminal id comes from the auth middleware (X-Terminal-Id or uid).
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tid, ok := middleware.TerminalIDFrom(r.Context())
	if !ok || tid == "" {
		writeError(w, http.StatusUnauthorized, "no terminal identity")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/cart"), "/")

	switch {
	case r.Method == http.MethodGet && rest == "":
		h.get(w, r, tid)
	case r.Method == http.MethodDelete && rest == "":
		h.clear(w, r, tid)
	case r.Method == http.MethodPost && rest == "items":
		h.addItem(w, r, tid)
	case r.Method == http.MethodPut && strings.HasPrefix(rest, "items/"):
		h.setQty(w, r, tid, strings.TrimPrefix(rest, "items/"))
	case r.Method == http.MethodDelete && strings.HasPrefix(rest, "items/"):
		h.removeItem(w, r, tid, strings.TrimPrefix(rest, "items/"))
	default:
		writeError(w, http.StatusNotFound, "not_found")
	}
}

// GET /cart
func (h *CartHandler) get(w http.ResponseWriter, r *http.Request, tid string) {
	c, err := h.uc.Get(r.Context(), tid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartDTO(c))
}

// POST /cart/items {"productId": "..."}
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, tid string) {
	var in struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.ProductID) == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}
	c, err := h.uc.AddItem(r.Context(), tid, in.ProductID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartDTO(c))
}

// PUT /cart/items/{productId} {"qty": n} — qty <= 0 removes the line.
func (h *CartHandler) setQty(w http.ResponseWriter, r *http.Request, tid, productID string) {
	var in struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	c, err := h.uc.SetQuantity(r.Context(), tid, productID, in.Qty)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartDTO(c))
}

// DELETE /cart/items/{productId}
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request, tid, productID string) {
	c, err := h.uc.RemoveItem(r.Context(), tid, productID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartDTO(c))
}

// DELETE /cart — explicit cancel.
func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request, tid string) {
	if err := h.uc.Clear(r.Context(), tid); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
