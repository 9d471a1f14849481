package rest

import (
	"net/http"
	"strconv"

	"estate-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListingHandler serves the public catalog: the paginated feed and the
// per-slug detail page. No identity is required.
type ListingHandler struct {
	getListingPage usecases_port.GetListingPageUseCase
	getBySlug      usecases_port.GetPropertyBySlugUseCase
}

func NewListingHandler(
	getListingPage usecases_port.GetListingPageUseCase,
	getBySlug usecases_port.GetPropertyBySlugUseCase,
) *ListingHandler {
	return &ListingHandler{
		getListingPage: getListingPage,
		getBySlug:      getBySlug,
	}
}

// GetListingPage handles GET /listings?cursor=<uuid>&limit=<n>. A missing
// cursor means the first page; limit falls back to the default and is
// clamped server side.
func (h *ListingHandler) GetListingPage(w http.ResponseWriter, r *http.Request) {
	var cursor *uuid.UUID
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid cursor")
			return
		}
		cursor = &parsed
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	page, err := h.getListingPage.Execute(r.Context(), cursor, limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingPageResponse(page))
}

func (h *ListingHandler) GetListingBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	property, err := h.getBySlug.Execute(r.Context(), slug)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "listing not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}
