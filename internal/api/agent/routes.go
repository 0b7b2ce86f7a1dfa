package agent

import (
	"net/http"
	"time"

	"github.com/oharris/listd/internal/store"
)

// RegisterRoutes adds all agent endpoints to the given mux. tz is the
// server reference zone for calendar-date queries.
func RegisterRoutes(mux *http.ServeMux, s *store.Store, tz *time.Location) {
	h := &Handler{store: s, tz: tz}

	// Property management
	mux.HandleFunc("POST /api/agent/properties/search", h.SearchProperties)
	mux.HandleFunc("POST /api/agent/properties", h.CreateProperty)
	mux.HandleFunc("GET /api/agent/properties/archived", h.ListArchived)
	mux.HandleFunc("GET /api/agent/properties/amenities", h.ListAmenities)
	mux.HandleFunc("GET /api/agent/properties/{id}", h.GetProperty)
	mux.HandleFunc("PUT /api/agent/properties/{id}", h.UpdateProperty)
	mux.HandleFunc("DELETE /api/agent/properties/{id}", h.DeleteProperty)
	mux.HandleFunc("PATCH /api/agent/properties/{id}/archive", h.ArchiveProperty)

	// Client management
	mux.HandleFunc("GET /api/agent/clients", h.ListClients)
	mux.HandleFunc("GET /api/agent/clients/{id}", h.GetClient)
	mux.HandleFunc("PUT /api/agent/clients/{id}", h.UpdateClient)

	// Viewing management
	mux.HandleFunc("GET /api/agent/viewings", h.ListViewings)
	mux.HandleFunc("GET /api/agent/viewings/day", h.ViewingsOnDay)
	mux.HandleFunc("POST /api/agent/viewings", h.CreateViewing)
	mux.HandleFunc("PUT /api/agent/viewings/{id}", h.UpdateViewing)
	mux.HandleFunc("PATCH /api/agent/viewings/{id}/status", h.UpdateViewingStatus)

	// Inquiry management
	mux.HandleFunc("GET /api/agent/inquiries", h.ListInquiries)
	mux.HandleFunc("GET /api/agent/inquiries/{id}", h.GetInquiry)
	mux.HandleFunc("POST /api/agent/inquiries/{id}/respond", h.RespondInquiry)
}
