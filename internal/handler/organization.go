// internal/handler/organization.go
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/service"
)

type OrganizationHandler struct {
	service *service.OrganizationService
}

func NewOrganizationHandler(service *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
	}
}

// ListOrganizations returns active organizations ordered alphabetically.
func (h *OrganizationHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.service.ListActive(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, orgs)
}

// GetOrganization returns a full organization record by ID.
func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	org, err := h.service.GetOrganization(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrganizationNotFound):
		respondWithError(w, http.StatusNotFound, "Organización no encontrada")
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
