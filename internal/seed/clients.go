package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oharris/listd/internal/domain"
	"github.com/oharris/listd/internal/store"
)

type clientDef struct {
	fullName string
	email    string
	phone    string
}

var defaultClients = []clientDef{
	{fullName: "Ana Martins", email: "ana.martins@example.com", phone: "+351 912 000 001"},
	{fullName: "Bruno Costa", email: "bruno.costa@example.com", phone: "+351 912 000 002"},
	{fullName: "Carla Nunes", email: "carla.nunes@example.com", phone: "+351 912 000 003"},
}

// Clients inserts the default clients if none exist yet.
func Clients(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return fmt.Errorf("count clients: %w", err)
	}
	if count > 0 {
		return nil
	}

	ts := "2024-01-01T00:00:00.000Z"
	for _, cd := range defaultClients {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO clients (id, full_name, email, phone, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, 'Active', ?, ?)`,
			uuid.NewString(), cd.fullName, cd.email, cd.phone, ts, ts,
		); err != nil {
			return fmt.Errorf("insert client %s: %w", cd.email, err)
		}
	}

	return nil
}

// Viewings schedules one upcoming viewing per seeded client against the
// seeded properties, if no viewings exist yet.
func Viewings(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM viewings`).Scan(&count); err != nil {
		return fmt.Errorf("count viewings: %w", err)
	}
	if count > 0 {
		return nil
	}

	clientIDs, err := idColumn(ctx, db, `SELECT id FROM clients ORDER BY rowid`)
	if err != nil {
		return err
	}
	propertyIDs, err := idColumn(ctx, db, `SELECT id FROM properties ORDER BY rowid`)
	if err != nil {
		return err
	}
	if len(clientIDs) == 0 || len(propertyIDs) == 0 {
		return nil
	}

	base := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	ts := "2024-01-02T00:00:00.000Z"
	for i, clientID := range clientIDs {
		when := store.FormatTime(base.Add(time.Duration(i) * 26 * time.Hour))
		if _, err := db.ExecContext(ctx,
			`INSERT INTO viewings (id, property_id, client_id, viewing_date, status, notes, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, '', ?, ?)`,
			uuid.NewString(), propertyIDs[i%len(propertyIDs)], clientID, when,
			domain.ViewingScheduled, ts, ts,
		); err != nil {
			return fmt.Errorf("insert viewing: %w", err)
		}
	}

	return nil
}

func idColumn(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
