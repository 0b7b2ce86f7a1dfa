package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/oharris/listd/internal/domain"
)

// InquiryStore defines inquiry persistence.
type InquiryStore interface {
	Create(ctx context.Context, in *domain.InquiryInput) (*domain.Inquiry, error)
	Get(ctx context.Context, id string) (*domain.Inquiry, error)
	List(ctx context.Context) ([]*domain.Inquiry, error)
	Respond(ctx context.Context, id string) (*domain.Inquiry, error)
}

// SQLiteInquiryStore implements InquiryStore backed by SQLite.
type SQLiteInquiryStore struct {
	db *sql.DB
}

// NewSQLiteInquiryStore creates a new SQLiteInquiryStore.
func NewSQLiteInquiryStore(db *sql.DB) *SQLiteInquiryStore {
	return &SQLiteInquiryStore{db: db}
}

// Create records a public inquiry about a property.
func (s *SQLiteInquiryStore) Create(ctx context.Context, in *domain.InquiryInput) (*domain.Inquiry, error) {
	if in.Email == "" {
		return nil, &ValidationError{Message: "email is required"}
	}
	if in.PropertyID == "" {
		return nil, &ValidationError{Message: "propertyId is required"}
	}

	id := newID()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO inquiries (id, property_id, client_name, client_email, client_phone, message, status, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, in.PropertyID, in.Name, in.Email, in.Phone, in.Message, domain.InquiryNew, now(),
	); err != nil {
		return nil, unavailable("insert inquiry", err)
	}
	return s.Get(ctx, id)
}

// Get retrieves a single inquiry by id.
func (s *SQLiteInquiryStore) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	var q domain.Inquiry
	err := s.db.QueryRowContext(ctx,
		`SELECT id, property_id, client_name, client_email, client_phone, message, status, submitted_at
		 FROM inquiries WHERE id = ?`, id,
	).Scan(&q.ID, &q.PropertyID, &q.ClientName, &q.ClientEmail, &q.ClientPhone, &q.Message, &q.Status, &q.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, unavailable("get inquiry", err)
	}
	return &q, nil
}

// List returns all inquiries, newest first.
func (s *SQLiteInquiryStore) List(ctx context.Context) ([]*domain.Inquiry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, property_id, client_name, client_email, client_phone, message, status, submitted_at
		 FROM inquiries ORDER BY submitted_at DESC, id`)
	if err != nil {
		return nil, unavailable("list inquiries", err)
	}
	defer func() { _ = rows.Close() }()

	inquiries := make([]*domain.Inquiry, 0)
	for rows.Next() {
		var q domain.Inquiry
		if err := rows.Scan(&q.ID, &q.PropertyID, &q.ClientName, &q.ClientEmail, &q.ClientPhone, &q.Message, &q.Status, &q.SubmittedAt); err != nil {
			return nil, unavailable("scan inquiry", err)
		}
		inquiries = append(inquiries, &q)
	}
	return inquiries, rows.Err()
}

// Respond marks an inquiry as responded.
func (s *SQLiteInquiryStore) Respond(ctx context.Context, id string) (*domain.Inquiry, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE inquiries SET status = ? WHERE id = ?`, domain.InquiryResponded, id,
	)
	if err != nil {
		return nil, unavailable("respond to inquiry", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}
