package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/oharris/listd/internal/domain"
	"github.com/oharris/listd/internal/store"
)

// testProperty describes one row inserted directly, with an explicit
// creation time so ordering assertions are deterministic.
type testProperty struct {
	title     string
	city      string
	ptype     string
	price     float64
	bedrooms  int
	bathrooms int
	amenities []string
	status    string
	createdAt time.Time
}

var testBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func insertProperty(t *testing.T, db *sql.DB, p testProperty) string {
	t.Helper()

	if p.status == "" {
		p.status = domain.StatusAvailable
	}
	if p.createdAt.IsZero() {
		p.createdAt = testBase
	}

	id := uuid.NewString()
	ts := store.FormatTime(p.createdAt)
	if _, err := db.Exec(
		`INSERT INTO properties (id, title, city, address, type, price, bedrooms, bathrooms, description, status, created_at, updated_at)
		 VALUES (?, ?, ?, '', ?, ?, ?, ?, '', ?, ?, ?)`,
		id, p.title, p.city, p.ptype, p.price, p.bedrooms, p.bathrooms, p.status, ts, ts,
	); err != nil {
		t.Fatalf("insert property %q: %v", p.title, err)
	}
	for _, a := range p.amenities {
		if _, err := db.Exec(
			`INSERT INTO property_amenities (property_id, amenity) VALUES (?, ?)`, id, a,
		); err != nil {
			t.Fatalf("insert amenity %q: %v", a, err)
		}
	}
	return id
}

func insertClient(t *testing.T, db *sql.DB, fullName string) string {
	t.Helper()

	id := uuid.NewString()
	ts := store.FormatTime(testBase)
	if _, err := db.Exec(
		`INSERT INTO clients (id, full_name, email, phone, status, created_at, updated_at)
		 VALUES (?, ?, ?, '', 'Active', ?, ?)`,
		id, fullName, fmt.Sprintf("%s@example.com", uuid.NewString()[:8]), ts, ts,
	); err != nil {
		t.Fatalf("insert client %q: %v", fullName, err)
	}
	return id
}

func titles(items []*domain.Property) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}

func assertTitles(t *testing.T, items []*domain.Property, want ...string) {
	t.Helper()

	got := titles(items)
	if len(got) != len(want) {
		t.Fatalf("expected %d results %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d: expected %q, got %q (full order %v)", i, want[i], got[i], got)
		}
	}
}

func search(t *testing.T, ss store.SearchStore, criteria *domain.FilterCriteria, page domain.PageRequest) *domain.PageResult {
	t.Helper()

	result, err := ss.Search(context.Background(), criteria, page)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	return result
}

func intCriterion(v int) domain.OptionalInt {
	return domain.OptionalInt{Value: v, Set: true}
}

func floatCriterion(v float64) domain.OptionalFloat {
	return domain.OptionalFloat{Value: v, Set: true}
}
