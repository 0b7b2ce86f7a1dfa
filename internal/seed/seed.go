package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Seed inserts baseline demo data into an empty database. It is idempotent:
// tables that already hold rows are left untouched. Properties go first so
// viewings can reference them.
func Seed(ctx context.Context, db *sql.DB) error {
	if err := Properties(ctx, db); err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}
	if err := Clients(ctx, db); err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}
	if err := Viewings(ctx, db); err != nil {
		return fmt.Errorf("seed viewings: %w", err)
	}
	return nil
}
