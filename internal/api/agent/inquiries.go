package agent

import (
	"net/http"

	"github.com/oharris/listd/internal/api"
)

// ListInquiries handles GET /api/agent/inquiries.
func (h *Handler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	inquiries, err := h.store.Inquiries.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, inquiries)
}

// GetInquiry handles GET /api/agent/inquiries/{id}.
func (h *Handler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	q, err := h.store.Inquiries.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, q)
}

// RespondInquiry handles POST /api/agent/inquiries/{id}/respond.
func (h *Handler) RespondInquiry(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	q, err := h.store.Inquiries.Respond(r.Context(), r.PathValue("id"))
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, q)
}
