package public

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/oharris/listd/internal/api"
	"github.com/oharris/listd/internal/domain"
	"github.com/oharris/listd/internal/store"
)

// Handler handles the public HTTP surface. Everything here sees only
// Available properties.
type Handler struct {
	store *store.Store
}

// criteriaFromQuery builds filter criteria from query parameters. Numeric
// parsing follows the same lenient policy as body criteria: unparseable
// values are ignored rather than failing the request.
func criteriaFromQuery(r *http.Request) (*domain.FilterCriteria, domain.PageRequest) {
	q := r.URL.Query()

	criteria := &domain.FilterCriteria{
		Location: q.Get("location"),
		Type:     q.Get("type"),
	}
	_ = criteria.MinPrice.UnmarshalJSON([]byte(q.Get("minPrice")))
	_ = criteria.MaxPrice.UnmarshalJSON([]byte(q.Get("maxPrice")))
	_ = criteria.Bedrooms.UnmarshalJSON([]byte(q.Get("bedrooms")))
	_ = criteria.Bathrooms.UnmarshalJSON([]byte(q.Get("bathrooms")))

	if raw := q.Get("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				criteria.Amenities = append(criteria.Amenities, a)
			}
		}
	}

	var page domain.PageRequest
	_ = page.Page.UnmarshalJSON([]byte(q.Get("page")))
	_ = page.PageSize.UnmarshalJSON([]byte(q.Get("pageSize")))

	return criteria, page
}

// SearchProperties handles GET /api/public/properties and
// GET /api/public/properties/search.
func (h *Handler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	criteria, page := criteriaFromQuery(r)
	result, err := h.store.Search.Search(r.Context(), criteria, page)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, result)
}

// GetFilters handles GET /api/public/properties/filters: the facet sets
// that populate the search UI's filter controls.
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	facets, err := h.store.Facets.Facets(r.Context())
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusOK, facets)
}

// GetProperty handles GET /api/public/properties/{id}. Archived properties
// are not visible on the public surface.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	p, err := h.store.Properties.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}
	if p.Status == domain.StatusArchived {
		api.WriteError(w, http.StatusNotFound, api.NewNotFoundError("Property not found", corrID))
		return
	}

	api.WriteJSON(w, http.StatusOK, p)
}

// InquireProperty handles POST /api/public/properties/{id}/inquire. The
// property id comes from the path; the body carries the contact details.
func (h *Handler) InquireProperty(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())
	propertyID := r.PathValue("id")

	exists, err := h.store.Properties.Exists(r.Context(), propertyID)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}
	if !exists {
		api.WriteError(w, http.StatusNotFound, api.NewNotFoundError("Property not found", corrID))
		return
	}

	var in domain.InquiryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}
	in.PropertyID = propertyID

	q, err := h.store.Inquiries.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusCreated, q)
}

// CreateInquiry handles POST /api/inquiry/create, the body-only inquiry
// endpoint where propertyId travels in the payload.
func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var in domain.InquiryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.NewValidationError("Invalid input JSON", corrID))
		return
	}

	q, err := h.store.Inquiries.Create(r.Context(), &in)
	if err != nil {
		api.WriteStoreError(w, err, corrID)
		return
	}

	api.WriteJSON(w, http.StatusCreated, q)
}
