package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/oharris/listd/internal/domain"
)

// ClientInput holds the writable fields of a client record.
type ClientInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// ClientStore defines client persistence.
type ClientStore interface {
	Create(ctx context.Context, in *ClientInput) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id string, in *ClientInput) (*domain.Client, error)
}

// SQLiteClientStore implements ClientStore backed by SQLite.
type SQLiteClientStore struct {
	db *sql.DB
}

// NewSQLiteClientStore creates a new SQLiteClientStore.
func NewSQLiteClientStore(db *sql.DB) *SQLiteClientStore {
	return &SQLiteClientStore{db: db}
}

// Create inserts a new client.
func (s *SQLiteClientStore) Create(ctx context.Context, in *ClientInput) (*domain.Client, error) {
	if in.FullName == "" {
		return nil, &ValidationError{Message: "fullName is required"}
	}
	id := newID()
	ts := now()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO clients (id, full_name, email, phone, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, in.FullName, in.Email, in.Phone, in.Status, ts, ts,
	); err != nil {
		return nil, unavailable("insert client", err)
	}
	return s.Get(ctx, id)
}

// Get retrieves a single client by id.
func (s *SQLiteClientStore) Get(ctx context.Context, id string) (*domain.Client, error) {
	var c domain.Client
	err := s.db.QueryRowContext(ctx,
		`SELECT id, full_name, email, phone, status, created_at, updated_at FROM clients WHERE id = ?`, id,
	).Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, unavailable("get client", err)
	}
	return &c, nil
}

// List returns all clients in creation order.
func (s *SQLiteClientStore) List(ctx context.Context) ([]*domain.Client, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, full_name, email, phone, status, created_at, updated_at FROM clients ORDER BY created_at, id`)
	if err != nil {
		return nil, unavailable("list clients", err)
	}
	defer func() { _ = rows.Close() }()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, unavailable("scan client", err)
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// Update replaces the writable fields of a client.
func (s *SQLiteClientStore) Update(ctx context.Context, id string, in *ClientInput) (*domain.Client, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE clients SET full_name = ?, email = ?, phone = ?, status = ?, updated_at = ? WHERE id = ?`,
		in.FullName, in.Email, in.Phone, in.Status, now(), id,
	)
	if err != nil {
		return nil, unavailable("update client", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}
