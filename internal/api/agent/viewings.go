package agent

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/oharris/listd/internal/api"
	"github.com/oharris/listd/internal/domain"
)

// ListViewings handles GET /api/agent/viewings.
func (h *Handler) ListViewings(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	viewings, err := h.store.Viewings.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, viewings)
}

// ViewingsOnDay handles GET /api/agent/viewings/day?date=YYYY-MM-DD. The
// date is interpreted in the server reference zone; only the calendar date
// of the parameter matters.
func (h *Handler) ViewingsOnDay(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("date query parameter is required", corrID))
		return
	}

	day, err := time.ParseInLocation("2006-01-02", dateParam, h.tz)
	if err != nil {
		// A full timestamp is accepted too; only its calendar date is used.
		if t, tsErr := time.Parse(time.RFC3339, dateParam); tsErr == nil {
			day = t.In(h.tz)
		} else {
			api.WriteError(w, http.StatusBadRequest, api.NewValidationError("date must be YYYY-MM-DD", corrID))
			return
		}
	}

	viewings, err := h.store.Viewings.OnDay(r.Context(), day)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, viewings)
}

// CreateViewing handles POST /api/agent/viewings.
func (h *Handler) CreateViewing(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var in domain.ViewingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}

	v, err := h.store.Viewings.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusCreated, v)
}

// UpdateViewing handles PUT /api/agent/viewings/{id}.
func (h *Handler) UpdateViewing(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var in domain.ViewingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}

	v, err := h.store.Viewings.Update(r.Context(), r.PathValue("id"), &in)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, v)
}

// UpdateViewingStatus handles PATCH /api/agent/viewings/{id}/status.
func (h *Handler) UpdateViewingStatus(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}

	v, err := h.store.Viewings.UpdateStatus(r.Context(), r.PathValue("id"), body.Status)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, v)
}
