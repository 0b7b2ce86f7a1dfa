package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/oharris/listd/internal/domain"
)

// ViewingStore defines viewing persistence and the day-window lookup.
type ViewingStore interface {
	Create(ctx context.Context, in *domain.ViewingInput) (*domain.Viewing, error)
	Get(ctx context.Context, id string) (*domain.Viewing, error)
	Update(ctx context.Context, id string, in *domain.ViewingInput) (*domain.Viewing, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Viewing, error)
	List(ctx context.Context) ([]*domain.Viewing, error)
	OnDay(ctx context.Context, day time.Time) ([]*domain.ViewingWithClient, error)
}

// SQLiteViewingStore implements ViewingStore backed by SQLite.
type SQLiteViewingStore struct {
	db *sql.DB
}

// NewSQLiteViewingStore creates a new SQLiteViewingStore.
func NewSQLiteViewingStore(db *sql.DB) *SQLiteViewingStore {
	return &SQLiteViewingStore{db: db}
}

// viewingDateLayouts are the accepted input forms for a viewing date.
var viewingDateLayouts = []string{time.RFC3339, timeLayout, "2006-01-02"}

func parseViewingDate(s string) (time.Time, error) {
	for _, layout := range viewingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{Message: "viewingDate must be an RFC 3339 timestamp or YYYY-MM-DD"}
}

// Create schedules a viewing. The client reference must resolve at creation
// time; later deletions can still leave the reference dangling, which the
// offline maintenance tool reconciles.
func (s *SQLiteViewingStore) Create(ctx context.Context, in *domain.ViewingInput) (*domain.Viewing, error) {
	if in.ClientID == "" {
		return nil, &ValidationError{Message: "clientId is required"}
	}
	when, err := parseViewingDate(in.ViewingDate)
	if err != nil {
		return nil, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients WHERE id = ?`, in.ClientID).Scan(&n); err != nil {
		return nil, unavailable("check client", err)
	}
	if n == 0 {
		return nil, &ValidationError{Message: "clientId does not reference an existing client"}
	}

	status := in.Status
	if status == "" {
		status = domain.ViewingScheduled
	}

	id := newID()
	ts := now()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO viewings (id, property_id, client_id, viewing_date, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, in.PropertyID, in.ClientID, FormatTime(when), status, in.Notes, ts, ts,
	); err != nil {
		return nil, unavailable("insert viewing", err)
	}

	return s.Get(ctx, id)
}

// Get retrieves a single viewing by id.
func (s *SQLiteViewingStore) Get(ctx context.Context, id string) (*domain.Viewing, error) {
	var v domain.Viewing
	err := s.db.QueryRowContext(ctx,
		`SELECT id, property_id, client_id, viewing_date, status, notes, created_at, updated_at
		 FROM viewings WHERE id = ?`, id,
	).Scan(&v.ID, &v.PropertyID, &v.ClientID, &v.ViewingDate, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, unavailable("get viewing", err)
	}
	return &v, nil
}

// Update replaces the writable fields of a viewing.
func (s *SQLiteViewingStore) Update(ctx context.Context, id string, in *domain.ViewingInput) (*domain.Viewing, error) {
	when, err := parseViewingDate(in.ViewingDate)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.ViewingScheduled
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE viewings SET property_id = ?, client_id = ?, viewing_date = ?, status = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		in.PropertyID, in.ClientID, FormatTime(when), status, in.Notes, now(), id,
	)
	if err != nil {
		return nil, unavailable("update viewing", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// UpdateStatus changes only the status of a viewing.
func (s *SQLiteViewingStore) UpdateStatus(ctx context.Context, id, status string) (*domain.Viewing, error) {
	if status == "" {
		return nil, &ValidationError{Message: "status is required"}
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE viewings SET status = ?, updated_at = ? WHERE id = ?`,
		status, now(), id,
	)
	if err != nil {
		return nil, unavailable("update viewing status", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// List returns all viewings ordered by viewing date.
func (s *SQLiteViewingStore) List(ctx context.Context) ([]*domain.Viewing, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, property_id, client_id, viewing_date, status, notes, created_at, updated_at
		 FROM viewings ORDER BY viewing_date, id`)
	if err != nil {
		return nil, unavailable("list viewings", err)
	}
	defer func() { _ = rows.Close() }()

	viewings := make([]*domain.Viewing, 0)
	for rows.Next() {
		var v domain.Viewing
		if err := rows.Scan(&v.ID, &v.PropertyID, &v.ClientID, &v.ViewingDate, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, unavailable("scan viewing", err)
		}
		viewings = append(viewings, &v)
	}
	return viewings, rows.Err()
}

// OnDay returns every viewing scheduled within the calendar day of the
// given time, interpreted in that time's location, each enriched with the
// referenced client's public-safe fields.
//
// The bounds are the inclusive midnight-to-midnight window of that day,
// with the upper bound one storage tick before the next midnight. The next
// midnight is computed calendar-wise, not as start+24h: on DST transition
// days the calendar day is 23 or 25 hours long. A dangling client reference
// yields a nil Client plus ClientMissing on that record only; the batch
// never fails for it.
func (s *SQLiteViewingStore) OnDay(ctx context.Context, day time.Time) ([]*domain.ViewingWithClient, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)

	rows, err := s.db.QueryContext(ctx,
		`SELECT v.id, v.property_id, v.client_id, v.viewing_date, v.status, v.notes, v.created_at, v.updated_at,
		        c.id, c.full_name, c.email, c.phone
		 FROM viewings v
		 LEFT JOIN clients c ON c.id = v.client_id
		 WHERE v.viewing_date >= ? AND v.viewing_date <= ?
		 ORDER BY v.viewing_date, v.id`,
		FormatTime(start), FormatTime(end),
	)
	if err != nil {
		return nil, unavailable("viewings on day", err)
	}
	defer func() { _ = rows.Close() }()

	results := make([]*domain.ViewingWithClient, 0)
	for rows.Next() {
		var vc domain.ViewingWithClient
		var cID, cName, cEmail, cPhone sql.NullString
		if err := rows.Scan(
			&vc.ID, &vc.PropertyID, &vc.ClientID, &vc.ViewingDate, &vc.Status, &vc.Notes, &vc.CreatedAt, &vc.UpdatedAt,
			&cID, &cName, &cEmail, &cPhone,
		); err != nil {
			return nil, unavailable("scan enriched viewing", err)
		}
		if cID.Valid {
			vc.Client = &domain.ClientSummary{
				ID:       cID.String,
				FullName: cName.String,
				Email:    cEmail.String,
				Phone:    cPhone.String,
			}
		} else {
			vc.ClientMissing = true
		}
		results = append(results, &vc)
	}
	return results, rows.Err()
}
