// internal/adapters/in/http/handlers/checkout_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"tiendapos/internal/adapters/in/http/middleware"
	"tiendapos/internal/application/usecase"
	saledom "tiendapos/internal/domain/sale"
)

// CheckoutHandler serves POST /checkout: it finalizes the terminal's cart
// into a sale. The cash-received gate lives here, on the caller side of the
// commit contract; Commit itself never sees the tendered amount.
type CheckoutHandler struct {
	checkout *usecase.CheckoutUsecase
	carts    *usecase.CartUsecase
}

func NewCheckoutHandler(checkout *usecase.CheckoutUsecase, carts *usecase.CartUsecase) http.Handler {
	return &CheckoutHandler{checkout: checkout, carts: carts}
}

type checkoutInput struct {
	Method       string `json:"paymentMethod"`
	CashReceived *int   `json:"cashReceived"`
}

type checkoutOutput struct {
	Sale   saleDTO `json:"sale"`
	Change int     `json:"change"`
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	prof, ok := middleware.ProfileFrom(r.Context())
	if !ok || !prof.Role.CanSell() {
		writeError(w, http.StatusForbidden, "checkout requires admin or cashier role")
		return
	}
	tid, ok := middleware.TerminalIDFrom(r.Context())
	if !ok || tid == "" {
		writeError(w, http.StatusUnauthorized, "no terminal identity")
		return
	}

	var in checkoutInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	method, err := saledom.ParseMethod(in.Method)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	c, err := h.carts.Get(r.Context(), tid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	// Cash gate: received must cover the total; change is floored at zero
	// for display.
	change := 0
	if method == saledom.MethodCash {
		if in.CashReceived == nil || *in.CashReceived < c.Total() {
			writeError(w, http.StatusUnprocessableEntity, "cash received does not cover the total")
			return
		}
		change = *in.CashReceived - c.Total()
		if change < 0 {
			change = 0
		}
	}

	header, err := h.checkout.Commit(r.Context(), tid, c, method)
	if err != nil {
		// The cart stays intact: the sale may or may not have been
		// partially recorded, so the register must inspect the sales log
		// before retrying manually.
		writeDomainErr(w, err)
		return
	}

	// Clear the terminal cart only after the success response from Commit.
	if clearErr := h.carts.Clear(r.Context(), tid); clearErr != nil {
		log.Printf("[checkout_handler] WARN: cart clear failed after commit terminal=%s err=%v", tid, clearErr)
	}

	writeJSON(w, http.StatusCreated, checkoutOutput{
		Sale:   toSaleDTO(saledom.Sale{Header: header}),
		Change: change,
	})
}
