// internal/adapters/in/http/handlers/http_helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tiendapos/internal/application/usecase"
	categorydom "tiendapos/internal/domain/category"
	productdom "tiendapos/internal/domain/product"
	profiledom "tiendapos/internal/domain/profile"
	saledom "tiendapos/internal/domain/sale"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeDomainErr maps known domain/usecase errors onto HTTP statuses.
// Anything unrecognized is a persistence failure: 502, and the message makes
// no promise about what was or wasn't written.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, productdom.ErrNotFound),
		errors.Is(err, categorydom.ErrNotFound),
		errors.Is(err, saledom.ErrNotFound),
		errors.Is(err, profiledom.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, usecase.ErrCommitInFlight):
		writeError(w, http.StatusConflict, err.Error())

	case errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrPasswordTooWeak),
		errors.Is(err, saledom.ErrInvalidMethod),
		errors.Is(err, saledom.ErrInvalidLine),
		errors.Is(err, saledom.ErrTotalMismatch),
		errors.Is(err, productdom.ErrInvalidID),
		errors.Is(err, productdom.ErrInvalidName),
		errors.Is(err, productdom.ErrInvalidPrice),
		errors.Is(err, productdom.ErrInvalidStock),
		errors.Is(err, categorydom.ErrInvalidName),
		errors.Is(err, profiledom.ErrInvalidEmail),
		errors.Is(err, profiledom.ErrInvalidName),
		errors.Is(err, profiledom.ErrInvalidRole):
		writeError(w, http.StatusUnprocessableEntity, err.Error())

	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}
