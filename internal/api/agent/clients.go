package agent

import (
	"encoding/json"
	"net/http"

	"github.com/oharris/listd/internal/api"
	"github.com/oharris/listd/internal/store"
)

// ListClients handles GET /api/agent/clients.
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	clients, err := h.store.Clients.List(r.Context())
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, clients)
}

// GetClient handles GET /api/agent/clients/{id}.
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	c, err := h.store.Clients.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, c)
}

// UpdateClient handles PUT /api/agent/clients/{id}.
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var in store.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}

	c, err := h.store.Clients.Update(r.Context(), r.PathValue("id"), &in)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, c)
}
