// internal/adapters/in/http/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"tiendapos/internal/adapters/in/http/middleware"
	"tiendapos/internal/application/usecase"
	profiledom "tiendapos/internal/domain/profile"
)

// UserHandler serves staff administration under /users. The usecase re-checks
// the acting role; the gate here is just the fast path.
type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) http.Handler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// GET /users  (admin)
func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorRole(w, r)
	if !ok {
		return
	}
	items, err := h.uc.ListStaff(r.Context(), actor)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	out := make([]profileDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toProfileDTO(p))
	}
	writeJSON(w, http.StatusOK, out)
}

type createStaffInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// POST /users  (admin)
func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorRole(w, r)
	if !ok {
		return
	}
	var in createStaffInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.uc.CreateStaff(r.Context(), actor, usecase.CreateStaffInput{
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		Role:     profiledom.Role(in.Role),
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileDTO(created))
}

func (h *UserHandler) actorRole(w http.ResponseWriter, r *http.Request) (profiledom.Role, bool) {
	prof, ok := middleware.ProfileFrom(r.Context())
	if !ok || !prof.Role.CanManageUsers() {
		writeError(w, http.StatusForbidden, "staff administration requires admin role")
		return "", false
	}
	return prof.Role, true
}
