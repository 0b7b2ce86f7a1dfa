package domain

// FacetSet is the distinct-value summary used to populate search filter
// controls. Each list is deduplicated in first-seen order over the current
// collection; it is recomputed on every request, never cached.
type FacetSet struct {
	Cities    []string `json:"cities"`
	Types     []string `json:"types"`
	Statuses  []string `json:"statuses"`
	Amenities []string `json:"amenities"`
}
