// internal/handler/user.go
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// ListUsers returns the inspector directory, optionally filtered by the
// "zone" query parameter (exact assigned-zone match).
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")

	users, err := h.service.ListUsers(r.Context(), zone)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, users)
}

// GetUser returns a single user by ID.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "Usuario no encontrado")
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
