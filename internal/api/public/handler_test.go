package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oharris/listd/internal/api/public"
	"github.com/oharris/listd/internal/domain"
	"github.com/oharris/listd/internal/store"
	"github.com/oharris/listd/internal/testhelpers"
)

func setup(t *testing.T) (*http.ServeMux, *store.Store) {
	t.Helper()

	db := testhelpers.NewTestDB(t)
	s := store.New(db)
	mux := http.NewServeMux()
	public.RegisterRoutes(mux, s)
	return mux, s
}

func do(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func createProperty(t *testing.T, s *store.Store, in *domain.PropertyInput) *domain.Property {
	t.Helper()

	p, err := s.Properties.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create property: %v", err)
	}
	return p
}

func TestPublicSearchFromQuery(t *testing.T) {
	mux, s := setup(t)

	createProperty(t, s, &domain.PropertyInput{
		Title:    "cheap flat",
		Location: domain.Location{City: "Lisbon"},
		Type:     "Apartment",
		Price:    150000,
		Bedrooms: 1,
	})
	createProperty(t, s, &domain.PropertyInput{
		Title:     "villa",
		Location:  domain.Location{City: "Faro"},
		Type:      "House",
		Price:     600000,
		Bedrooms:  4,
		Amenities: []string{"Pool", "Garden"},
	})

	rec := do(t, mux, http.MethodGet, "/api/public/properties?location=faro&minPrice=500000&amenities=Pool,Garden&bedrooms=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var result domain.PageResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("total = %d, want 1", result.Total)
	}
	if result.Items[0].Title != "villa" {
		t.Errorf("expected villa, got %q", result.Items[0].Title)
	}

	// The search alias answers the same query.
	rec = do(t, mux, http.MethodGet, "/api/public/properties/search?type=Apartment", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("alias status = %d", rec.Code)
	}
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode alias: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("alias total = %d, want 1", result.Total)
	}
}

func TestPublicSearchIgnoresGarbageNumbers(t *testing.T) {
	mux, s := setup(t)

	createProperty(t, s, &domain.PropertyInput{
		Title:    "flat",
		Location: domain.Location{City: "Lisbon"},
		Type:     "Apartment",
		Price:    150000,
	})

	rec := do(t, mux, http.MethodGet, "/api/public/properties?minPrice=cheap&bedrooms=lots", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var result domain.PageResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("total = %d, want 1 (garbage criteria must not constrain)", result.Total)
	}
}

func TestPublicFilters(t *testing.T) {
	mux, s := setup(t)

	createProperty(t, s, &domain.PropertyInput{
		Title:     "a",
		Location:  domain.Location{City: "Lisbon"},
		Type:      "Apartment",
		Amenities: []string{"Pool"},
	})
	createProperty(t, s, &domain.PropertyInput{
		Title:     "b",
		Location:  domain.Location{City: "Porto"},
		Type:      "House",
		Amenities: []string{"Pool", "Garden"},
	})

	rec := do(t, mux, http.MethodGet, "/api/public/properties/filters", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var facets domain.FacetSet
	if err := json.NewDecoder(rec.Body).Decode(&facets); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(facets.Cities) != 2 || len(facets.Types) != 2 {
		t.Errorf("unexpected facets: %+v", facets)
	}
	if len(facets.Amenities) != 2 {
		t.Errorf("amenities = %v, want deduplicated pair", facets.Amenities)
	}
}

func TestPublicGetPropertyHidesArchived(t *testing.T) {
	mux, s := setup(t)
	ctx := context.Background()

	p := createProperty(t, s, &domain.PropertyInput{
		Title:    "flat",
		Location: domain.Location{City: "Lisbon"},
		Type:     "Apartment",
	})

	rec := do(t, mux, http.MethodGet, "/api/public/properties/"+p.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	if _, err := s.Properties.Archive(ctx, p.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	rec = do(t, mux, http.MethodGet, "/api/public/properties/"+p.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("archived property status = %d, want 404", rec.Code)
	}
}

func TestPublicInquireProperty(t *testing.T) {
	mux, s := setup(t)

	p := createProperty(t, s, &domain.PropertyInput{
		Title:    "flat",
		Location: domain.Location{City: "Lisbon"},
		Type:     "Apartment",
	})

	rec := do(t, mux, http.MethodPost, "/api/public/properties/"+p.ID+"/inquire", map[string]string{
		"name":    "Diana Lopes",
		"email":   "diana@example.com",
		"message": "Still available?",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var q domain.Inquiry
	if err := json.NewDecoder(rec.Body).Decode(&q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.PropertyID != p.ID {
		t.Errorf("propertyId = %q, want %q (path id wins)", q.PropertyID, p.ID)
	}
	if q.Status != domain.InquiryNew {
		t.Errorf("status = %q, want %q", q.Status, domain.InquiryNew)
	}

	rec = do(t, mux, http.MethodPost, "/api/public/properties/missing/inquire", map[string]string{
		"email": "diana@example.com",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing property status = %d, want 404", rec.Code)
	}

	rec = do(t, mux, http.MethodPost, "/api/public/properties/"+p.ID+"/inquire", map[string]string{
		"name": "No Email",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing email status = %d, want 400", rec.Code)
	}
}

func TestCreateInquiryBodyOnly(t *testing.T) {
	mux, s := setup(t)

	p := createProperty(t, s, &domain.PropertyInput{
		Title:    "flat",
		Location: domain.Location{City: "Lisbon"},
		Type:     "Apartment",
	})

	rec := do(t, mux, http.MethodPost, "/api/inquiry/create", map[string]string{
		"propertyId": p.ID,
		"email":      "diana@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	rec = do(t, mux, http.MethodPost, "/api/inquiry/create", map[string]string{
		"email": "diana@example.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing propertyId status = %d, want 400", rec.Code)
	}
}
