package public

import (
	"net/http"

	"github.com/oharris/listd/internal/store"
)

// RegisterRoutes adds all public endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	// Properties
	mux.HandleFunc("GET /api/public/properties", h.SearchProperties)
	mux.HandleFunc("GET /api/public/properties/search", h.SearchProperties)
	mux.HandleFunc("GET /api/public/properties/filters", h.GetFilters)
	mux.HandleFunc("GET /api/public/properties/{id}", h.GetProperty)
	mux.HandleFunc("POST /api/public/properties/{id}/inquire", h.InquireProperty)

	// Inquiries
	mux.HandleFunc("POST /api/inquiry/create", h.CreateInquiry)
}
