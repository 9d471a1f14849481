package rest

import (
	"encoding/json"
	"net/http"

	"estate-service/internal/core/domain"
	"estate-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PropertyHandler serves the management surface behind the gateway.
type PropertyHandler struct {
	createProperty  usecases_port.CreatePropertyUseCase
	updateProperty  usecases_port.UpdatePropertyUseCase
	updateImages    usecases_port.UpdatePropertyImagesUseCase
	deleteProperty  usecases_port.DeletePropertyUseCase
	setStatus       usecases_port.SetPropertyStatusUseCase
	getPropertyByID usecases_port.GetPropertyByIDUseCase
	getAll          usecases_port.GetAllPropertiesUseCase
}

func NewPropertyHandler(
	createProperty usecases_port.CreatePropertyUseCase,
	updateProperty usecases_port.UpdatePropertyUseCase,
	updateImages usecases_port.UpdatePropertyImagesUseCase,
	deleteProperty usecases_port.DeletePropertyUseCase,
	setStatus usecases_port.SetPropertyStatusUseCase,
	getPropertyByID usecases_port.GetPropertyByIDUseCase,
	getAll usecases_port.GetAllPropertiesUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		createProperty:  createProperty,
		updateProperty:  updateProperty,
		updateImages:    updateImages,
		deleteProperty:  deleteProperty,
		setStatus:       setStatus,
		getPropertyByID: getPropertyByID,
		getAll:          getAll,
	}
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.createProperty.Execute(r.Context(), req.toDraft())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*created))
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.updateProperty.Execute(r.Context(), id, req.toDraft())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*updated))
}

func (h *PropertyHandler) UpdatePropertyImages(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	var req updateImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.updateImages.Execute(r.Context(), id, req.Thumbnail, req.Images)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*updated))
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	if err := h.deleteProperty.Execute(r.Context(), id); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) PublishProperty(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.StatusPublished)
}

func (h *PropertyHandler) UnpublishProperty(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.StatusUnpublished)
}

func (h *PropertyHandler) DraftProperty(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.StatusDraft)
}

func (h *PropertyHandler) transition(w http.ResponseWriter, r *http.Request, status domain.PropertyStatus) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	updated, err := h.setStatus.Execute(r.Context(), id, status)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*updated))
}

func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	property, err := h.getPropertyByID.Execute(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

func (h *PropertyHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.getAll.Execute(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

func parsePropertyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return uuid.Nil, false
	}
	return id, true
}
