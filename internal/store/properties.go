package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/oharris/listd/internal/domain"
)

// PropertyStore defines property persistence. Search and facet reads live
// in their own stores; this one covers the agent's write path plus direct
// lookups.
type PropertyStore interface {
	Create(ctx context.Context, in *domain.PropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, id string, in *domain.PropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) (*domain.Property, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*domain.Property, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// SQLitePropertyStore implements PropertyStore backed by SQLite.
type SQLitePropertyStore struct {
	db *sql.DB
}

// NewSQLitePropertyStore creates a new SQLitePropertyStore.
func NewSQLitePropertyStore(db *sql.DB) *SQLitePropertyStore {
	return &SQLitePropertyStore{db: db}
}

// Create inserts a new property with its amenities and images. The property
// starts out Available with a store-assigned id and creation time.
func (s *SQLitePropertyStore) Create(ctx context.Context, in *domain.PropertyInput) (*domain.Property, error) {
	id := newID()
	ts := now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, unavailable("begin create property", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO properties (id, title, city, address, type, price, bedrooms, bathrooms, description, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, in.Title, in.Location.City, in.Location.Address, in.Type, in.Price,
		in.Bedrooms, in.Bathrooms, in.Description, domain.StatusAvailable, ts, ts,
	); err != nil {
		return nil, unavailable("insert property", err)
	}

	if err := insertTags(ctx, tx, id, in.Amenities, in.Images); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, unavailable("commit create property", err)
	}

	return s.Get(ctx, id)
}

// Get retrieves a single property by id, including amenities and images.
func (s *SQLitePropertyStore) Get(ctx context.Context, id string) (*domain.Property, error) {
	return getProperty(ctx, s.db, id)
}

// Update replaces the writable fields of a property. Status and creation
// time are untouched; archiving is a separate action.
func (s *SQLitePropertyStore) Update(ctx context.Context, id string, in *domain.PropertyInput) (*domain.Property, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, unavailable("begin update property", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE properties SET title = ?, city = ?, address = ?, type = ?, price = ?,
		 bedrooms = ?, bathrooms = ?, description = ?, updated_at = ?
		 WHERE id = ?`,
		in.Title, in.Location.City, in.Location.Address, in.Type, in.Price,
		in.Bedrooms, in.Bathrooms, in.Description, now(), id,
	)
	if err != nil {
		return nil, unavailable("update property", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM property_amenities WHERE property_id = ?`, id); err != nil {
		return nil, unavailable("clear amenities", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM property_images WHERE property_id = ?`, id); err != nil {
		return nil, unavailable("clear images", err)
	}
	if err := insertTags(ctx, tx, id, in.Amenities, in.Images); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, unavailable("commit update property", err)
	}

	return s.Get(ctx, id)
}

// Delete removes a property. Amenities and images cascade; viewings and
// inquiries that reference it are left behind for offline reconciliation.
func (s *SQLitePropertyStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return unavailable("delete property", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Archive marks a property Archived, removing it from search results.
func (s *SQLitePropertyStore) Archive(ctx context.Context, id string) (*domain.Property, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE properties SET status = ?, updated_at = ? WHERE id = ?`,
		domain.StatusArchived, now(), id,
	)
	if err != nil {
		return nil, unavailable("archive property", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// ListByStatus returns properties with the given status, newest first. It
// is the explicit path around the Available restriction baked into search.
func (s *SQLitePropertyStore) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*domain.Property, error) {
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM properties WHERE status = ? ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		status, limit, offset,
	)
	if err != nil {
		return nil, unavailable("list properties by status", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, unavailable("scan property id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list rows", err)
	}

	return fetchProperties(ctx, s.db, ids)
}

// Exists reports whether a property with the given id is present.
func (s *SQLitePropertyStore) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties WHERE id = ?`, id).Scan(&n); err != nil {
		return false, unavailable("check property", err)
	}
	return n > 0, nil
}

// getProperty loads a full property row plus its amenity and image lists.
// Shared with the search store, which resolves matched ids through it.
func getProperty(ctx context.Context, db *sql.DB, id string) (*domain.Property, error) {
	var p domain.Property
	err := db.QueryRowContext(ctx,
		`SELECT id, title, city, address, type, price, bedrooms, bathrooms, description, status, created_at, updated_at
		 FROM properties WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Location.City, &p.Location.Address, &p.Type, &p.Price,
		&p.Bedrooms, &p.Bathrooms, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, unavailable("get property", err)
	}

	p.Amenities, err = stringColumn(ctx, db,
		`SELECT amenity FROM property_amenities WHERE property_id = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, err
	}
	p.Images, err = stringColumn(ctx, db,
		`SELECT url FROM property_images WHERE property_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// fetchProperties resolves ids to full records, skipping any that vanished
// between the id query and the fetch.
func fetchProperties(ctx context.Context, db *sql.DB, ids []string) ([]*domain.Property, error) {
	items := make([]*domain.Property, 0, len(ids))
	for _, id := range ids {
		p, err := getProperty(ctx, db, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

// stringColumn runs a single-column query and collects the values.
func stringColumn(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("query column", err)
	}
	defer func() { _ = rows.Close() }()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, unavailable("scan column", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// insertTags writes the amenity set and ordered image list for a property.
func insertTags(ctx context.Context, tx *sql.Tx, id string, amenities, images []string) error {
	seen := make(map[string]bool, len(amenities))
	for _, a := range amenities {
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO property_amenities (property_id, amenity) VALUES (?, ?)`, id, a,
		); err != nil {
			return unavailable("insert amenity", err)
		}
	}
	for i, url := range images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO property_images (property_id, position, url) VALUES (?, ?, ?)`, id, i, url,
		); err != nil {
			return unavailable("insert image", err)
		}
	}
	return nil
}
