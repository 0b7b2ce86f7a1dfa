// Package maintenance reconciles referential-integrity drift: viewings and
// inquiries that still reference clients or properties deleted after the
// fact. It runs offline through the same database the stores use and is
// never part of the serving path.
package maintenance

import (
	"context"
	"database/sql"
	"fmt"
)

// Report summarizes the dangling references found in one scan.
type Report struct {
	ViewingsMissingClient    []string
	ViewingsMissingProperty  []string
	InquiriesMissingProperty []string
}

// Total returns the number of orphaned records across all categories. A
// viewing dangling on both sides is counted once per category.
func (r *Report) Total() int {
	return len(r.ViewingsMissingClient) + len(r.ViewingsMissingProperty) + len(r.InquiriesMissingProperty)
}

// Scan finds every record whose foreign reference no longer resolves. It
// only reads; pair it with Repair to remove the orphans.
func Scan(ctx context.Context, db *sql.DB) (*Report, error) {
	report := &Report{}
	var err error

	report.ViewingsMissingClient, err = idColumn(ctx, db,
		`SELECT v.id FROM viewings v LEFT JOIN clients c ON c.id = v.client_id WHERE c.id IS NULL ORDER BY v.id`)
	if err != nil {
		return nil, fmt.Errorf("scan viewings without client: %w", err)
	}

	report.ViewingsMissingProperty, err = idColumn(ctx, db,
		`SELECT v.id FROM viewings v LEFT JOIN properties p ON p.id = v.property_id WHERE p.id IS NULL ORDER BY v.id`)
	if err != nil {
		return nil, fmt.Errorf("scan viewings without property: %w", err)
	}

	report.InquiriesMissingProperty, err = idColumn(ctx, db,
		`SELECT q.id FROM inquiries q LEFT JOIN properties p ON p.id = q.property_id WHERE p.id IS NULL ORDER BY q.id`)
	if err != nil {
		return nil, fmt.Errorf("scan inquiries without property: %w", err)
	}

	return report, nil
}

// Repair deletes every orphaned record found by a fresh scan and returns
// how many rows were removed.
func Repair(ctx context.Context, db *sql.DB) (int, error) {
	removed := 0

	res, err := db.ExecContext(ctx,
		`DELETE FROM viewings WHERE
		   NOT EXISTS (SELECT 1 FROM clients c WHERE c.id = viewings.client_id)
		   OR NOT EXISTS (SELECT 1 FROM properties p WHERE p.id = viewings.property_id)`)
	if err != nil {
		return removed, fmt.Errorf("repair viewings: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		removed += int(n)
	}

	res, err = db.ExecContext(ctx,
		`DELETE FROM inquiries WHERE
		   NOT EXISTS (SELECT 1 FROM properties p WHERE p.id = inquiries.property_id)`)
	if err != nil {
		return removed, fmt.Errorf("repair inquiries: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		removed += int(n)
	}

	return removed, nil
}

func idColumn(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
