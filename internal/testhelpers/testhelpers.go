package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/oharris/listd/internal/database"
)

// NewTestDB returns an in-memory SQLite database configured the same way as
// production, with all migrations applied. The database is closed when the
// test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}
