package store

import (
	"context"
	"database/sql"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/oharris/listd/internal/domain"
)

// SearchStore compiles filter criteria into a storage predicate and
// executes it with pagination.
type SearchStore interface {
	Search(ctx context.Context, criteria *domain.FilterCriteria, page domain.PageRequest) (*domain.PageResult, error)
}

// SQLiteSearchStore implements SearchStore backed by SQLite.
type SQLiteSearchStore struct {
	db *sql.DB
}

// NewSQLiteSearchStore creates a new SQLiteSearchStore.
func NewSQLiteSearchStore(db *sql.DB) *SQLiteSearchStore {
	return &SQLiteSearchStore{db: db}
}

// clause is one independent predicate fragment derived from a single
// criterion. Clauses are combined with AND; there is no OR or negation.
type clause struct {
	expr string
	args []any
}

// buildClauses compiles criteria into an ordered clause list. The implicit
// Available restriction always comes first; absent criteria contribute
// nothing, so every input yields a valid predicate.
func buildClauses(criteria *domain.FilterCriteria) []clause {
	clauses := []clause{
		{expr: "status = ?", args: []any{domain.StatusAvailable}},
	}
	if criteria == nil {
		return clauses
	}

	if criteria.Location != "" {
		// SQLite LIKE is case-insensitive for ASCII, matching the
		// insensitive-contains semantics of the location criterion.
		clauses = append(clauses, clause{
			expr: "city LIKE ?",
			args: []any{"%" + criteria.Location + "%"},
		})
	}
	if criteria.Type != "" {
		clauses = append(clauses, clause{expr: "type = ?", args: []any{criteria.Type}})
	}
	if criteria.MinPrice.Set {
		clauses = append(clauses, clause{expr: "price >= ?", args: []any{criteria.MinPrice.Value}})
	}
	if criteria.MaxPrice.Set {
		clauses = append(clauses, clause{expr: "price <= ?", args: []any{criteria.MaxPrice.Value}})
	}
	// Subset test: one EXISTS per required amenity. Candidates may carry
	// additional amenities.
	for _, amenity := range criteria.Amenities {
		if amenity == "" {
			continue
		}
		clauses = append(clauses, clause{
			expr: "EXISTS (SELECT 1 FROM property_amenities pa WHERE pa.property_id = properties.id AND pa.amenity = ?)",
			args: []any{amenity},
		})
	}
	if criteria.Bedrooms.Set {
		clauses = append(clauses, clause{expr: "bedrooms >= ?", args: []any{criteria.Bedrooms.Value}})
	}
	if criteria.Bathrooms.Set {
		clauses = append(clauses, clause{expr: "bathrooms >= ?", args: []any{criteria.Bathrooms.Value}})
	}

	return clauses
}

// whereClause folds a clause list into a WHERE fragment and its args.
func whereClause(clauses []clause) (string, []any) {
	exprs := make([]string, len(clauses))
	var args []any
	for i, c := range clauses {
		exprs[i] = c.expr
		args = append(args, c.args...)
	}
	return " WHERE " + strings.Join(exprs, " AND "), args
}

// Search executes the compiled predicate: a COUNT over the full filtered
// set and a page of matching ids, ordered newest first. The two queries
// share the WHERE clause and run concurrently; under a concurrent write
// they can observe slightly different snapshots, which is accepted.
func (s *SQLiteSearchStore) Search(ctx context.Context, criteria *domain.FilterCriteria, page domain.PageRequest) (*domain.PageResult, error) {
	where, args := whereClause(buildClauses(criteria))
	_, size := page.Normalize()
	offset := page.Offset()

	var total int
	var ids []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.db.QueryRowContext(gctx,
			"SELECT COUNT(*) FROM properties"+where, args...,
		).Scan(&total); err != nil {
			return unavailable("count properties", err)
		}
		return nil
	})
	g.Go(func() error {
		query := "SELECT id FROM properties" + where +
			" ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
		pageArgs := make([]any, 0, len(args)+2)
		pageArgs = append(pageArgs, args...)
		pageArgs = append(pageArgs, size, offset)

		rows, err := s.db.QueryContext(gctx, query, pageArgs...)
		if err != nil {
			return unavailable("search properties", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return unavailable("scan search result", err)
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			return unavailable("search rows", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items, err := fetchProperties(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}

	return &domain.PageResult{Total: total, Items: items}, nil
}
