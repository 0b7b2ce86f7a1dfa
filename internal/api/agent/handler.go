package agent

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/oharris/listd/internal/api"
	"github.com/oharris/listd/internal/domain"
	"github.com/oharris/listd/internal/store"
)

// Handler handles the agent-facing HTTP surface.
type Handler struct {
	store *store.Store
	// tz is the server reference zone used to interpret calendar dates.
	tz *time.Location
}

// SearchProperties handles POST /api/agent/properties/search. The body is
// the original list-properties contract: {filter, page, pageSize}.
func (h *Handler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var body struct {
		Filter   *domain.FilterCriteria `json:"filter"`
		Page     domain.OptionalInt     `json:"page"`
		PageSize domain.OptionalInt     `json:"pageSize"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}

	page := domain.PageRequest{Page: body.Page, PageSize: body.PageSize}
	result, err := h.store.Search.Search(r.Context(), body.Filter, page)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, result)
}

// CreateProperty handles POST /api/agent/properties.
func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var in domain.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}
	if in.Location.City == "" {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("location.city is required", corrID))
		return
	}
	if in.Type == "" {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("type is required", corrID))
		return
	}

	p, err := h.store.Properties.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusCreated, p)
}

// GetProperty handles GET /api/agent/properties/{id}.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	p, err := h.store.Properties.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, p)
}

// UpdateProperty handles PUT /api/agent/properties/{id}.
func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var in domain.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}

	p, err := h.store.Properties.Update(r.Context(), r.PathValue("id"), &in)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, p)
}

// DeleteProperty handles DELETE /api/agent/properties/{id}.
func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	if err := h.store.Properties.Delete(r.Context(), r.PathValue("id")); err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ArchiveProperty handles PATCH /api/agent/properties/{id}/archive.
func (h *Handler) ArchiveProperty(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	p, err := h.store.Properties.Archive(r.Context(), r.PathValue("id"))
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, p)
}

// ListArchived handles GET /api/agent/properties/archived. This is the
// explicit route around the Available restriction baked into search.
func (h *Handler) ListArchived(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	limit := domain.DefaultPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	items, err := h.store.Properties.ListByStatus(r.Context(), domain.StatusArchived, limit, offset)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"properties": items})
}

// ListAmenities handles GET /api/agent/properties/amenities.
func (h *Handler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	amenities, err := h.store.Facets.Amenities(r.Context())
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, amenities)
}
