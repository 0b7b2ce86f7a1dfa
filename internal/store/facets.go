package store

import (
	"context"
	"database/sql"

	"github.com/oharris/listd/internal/domain"
)

// FacetStore derives the distinct-value facets used to populate search
// filter controls.
type FacetStore interface {
	Facets(ctx context.Context) (*domain.FacetSet, error)
	Amenities(ctx context.Context) ([]string, error)
}

// SQLiteFacetStore implements FacetStore backed by SQLite.
type SQLiteFacetStore struct {
	db *sql.DB
}

// NewSQLiteFacetStore creates a new SQLiteFacetStore.
func NewSQLiteFacetStore(db *sql.DB) *SQLiteFacetStore {
	return &SQLiteFacetStore{db: db}
}

// Facets recomputes all facet lists from the current collection. Every call
// hits storage; freshness is guaranteed at the cost of a scan, which is
// fine at this collection size. There is no cache to invalidate.
//
// Each list is deduplicated in first-seen order: GROUP BY the value,
// ordered by the rowid of its first occurrence.
func (s *SQLiteFacetStore) Facets(ctx context.Context) (*domain.FacetSet, error) {
	cities, err := distinctValues(ctx, s.db,
		`SELECT city FROM properties GROUP BY city ORDER BY MIN(rowid)`)
	if err != nil {
		return nil, err
	}
	types, err := distinctValues(ctx, s.db,
		`SELECT type FROM properties GROUP BY type ORDER BY MIN(rowid)`)
	if err != nil {
		return nil, err
	}
	statuses, err := distinctValues(ctx, s.db,
		`SELECT status FROM properties GROUP BY status ORDER BY MIN(rowid)`)
	if err != nil {
		return nil, err
	}
	amenities, err := s.Amenities(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.FacetSet{
		Cities:    cities,
		Types:     types,
		Statuses:  statuses,
		Amenities: amenities,
	}, nil
}

// Amenities returns the deduplicated union of every property's amenity set,
// in first-seen order across the collection. Unlike the scalar facets this
// one is array-valued, so the order is that of the amenity rows themselves.
func (s *SQLiteFacetStore) Amenities(ctx context.Context) ([]string, error) {
	return distinctValues(ctx, s.db,
		`SELECT amenity FROM property_amenities GROUP BY amenity ORDER BY MIN(rowid)`)
}

// distinctValues collects the single column of a grouped facet query.
func distinctValues(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, unavailable("facet query", err)
	}
	defer func() { _ = rows.Close() }()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, unavailable("scan facet value", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("facet rows", err)
	}
	return values, nil
}
