// internal/handler/merchant.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/middleware"
	"github.com/sirecovip/backend/internal/model"
	"github.com/sirecovip/backend/internal/service"
	"github.com/sirecovip/backend/internal/upload"
)

type MerchantHandler struct {
	service *service.MerchantService
}

func NewMerchantHandler(service *service.MerchantService) *MerchantHandler {
	return &MerchantHandler{
		service: service,
	}
}

type merchantOrganization struct {
	Name string `json:"name"`
}

// MerchantResponse is a merchant row plus the nested organization display
// name, matching the shape the dashboards consume.
type MerchantResponse struct {
	*model.Merchant
	Organizations *merchantOrganization `json:"organizations"`
}

func toMerchantResponse(merchant *model.Merchant) MerchantResponse {
	resp := MerchantResponse{Merchant: merchant}
	if merchant.Organization != nil {
		resp.Organizations = &merchantOrganization{Name: merchant.Organization.Name}
	}
	return resp
}

// CreateMerchant registers a new merchant. Accepts JSON or multipart form
// data with an optional "image" part.
func (h *MerchantHandler) CreateMerchant(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	input, file, err := h.decodeRegistration(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	merchant, err := h.service.RegisterMerchant(r.Context(), principal, input, file)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "✅ Comerciante registrado correctamente",
		"merchant": toMerchantResponse(merchant),
	})
}

// ListMerchants returns the most recent registrations.
func (h *MerchantHandler) ListMerchants(w http.ResponseWriter, r *http.Request) {
	merchants, err := h.service.ListMerchants(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	responses := make([]MerchantResponse, 0, len(merchants))
	for _, merchant := range merchants {
		responses = append(responses, toMerchantResponse(merchant))
	}

	respondWithJSON(w, http.StatusOK, responses)
}

// GetMerchant returns a single merchant by ID.
func (h *MerchantHandler) GetMerchant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	merchant, err := h.service.GetMerchant(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toMerchantResponse(merchant))
}

// UpdateMerchant applies field updates, with the same optional-image shape
// as create.
func (h *MerchantHandler) UpdateMerchant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	input, file, err := h.decodeUpdate(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	merchant, err := h.service.UpdateMerchant(r.Context(), id, input, file)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Comerciante actualizado correctamente",
		"merchant": toMerchantResponse(merchant),
	})
}

func (h *MerchantHandler) decodeRegistration(r *http.Request) (service.RegisterMerchantInput, *upload.File, error) {
	var input service.RegisterMerchantInput

	if !isMultipart(r) {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return input, nil, domain.ErrInvalidInput
		}
		return input, nil, nil
	}

	file, err := upload.FromRequest(r, "image")
	if err != nil {
		return input, nil, err
	}

	input.Name = r.FormValue("name")
	input.Business = r.FormValue("business")
	input.Address = r.FormValue("address")
	input.Delegation = r.FormValue("delegation")
	input.ScheduleStart = r.FormValue("schedule_start")
	input.ScheduleEnd = r.FormValue("schedule_end")

	if orgID := r.FormValue("organization_id"); orgID != "" {
		input.OrganizationID = &orgID
	}

	if input.Latitude, err = parseCoordinate(r.FormValue("latitude")); err != nil {
		return input, nil, err
	}
	if input.Longitude, err = parseCoordinate(r.FormValue("longitude")); err != nil {
		return input, nil, err
	}

	return input, file, nil
}

func (h *MerchantHandler) decodeUpdate(r *http.Request) (service.UpdateMerchantInput, *upload.File, error) {
	var input service.UpdateMerchantInput

	if !isMultipart(r) {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return input, nil, domain.ErrInvalidInput
		}
		return input, nil, nil
	}

	file, err := upload.FromRequest(r, "image")
	if err != nil {
		return input, nil, err
	}

	setIfPresent := func(field string, dest **string) {
		if value := r.FormValue(field); value != "" {
			*dest = &value
		}
	}
	setIfPresent("name", &input.Name)
	setIfPresent("business", &input.Business)
	setIfPresent("address", &input.Address)
	setIfPresent("delegation", &input.Delegation)
	setIfPresent("organization_id", &input.OrganizationID)
	setIfPresent("schedule_start", &input.ScheduleStart)
	setIfPresent("schedule_end", &input.ScheduleEnd)
	setIfPresent("status", &input.Status)

	if value := r.FormValue("latitude"); value != "" {
		latitude, err := parseCoordinate(value)
		if err != nil {
			return input, nil, err
		}
		input.Latitude = &latitude
	}
	if value := r.FormValue("longitude"); value != "" {
		longitude, err := parseCoordinate(value)
		if err != nil {
			return input, nil, err
		}
		input.Longitude = &longitude
	}

	return input, file, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseCoordinate(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return parsed, nil
}

// handleError handles common error cases
func (h *MerchantHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMerchantNotFound):
		respondWithError(w, http.StatusNotFound, "Comerciante no encontrado")
	case errors.Is(err, domain.ErrInvalidStatus):
		respondWithError(w, http.StatusBadRequest, "Estatus inválido")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, "Datos de registro inválidos")
	case errors.Is(err, domain.ErrFileTooLarge):
		respondWithError(w, http.StatusBadRequest, "El archivo excede el límite de 5MB")
	case errors.Is(err, domain.ErrUnsupportedFileType):
		respondWithError(w, http.StatusBadRequest, "⛔ Solo se permiten imágenes (JPG, PNG, GIF, WEBP) y documentos PDF")
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
