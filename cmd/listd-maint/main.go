// Command listd-maint runs offline maintenance against a listd database:
// scanning for viewings and inquiries whose client or property was deleted,
// optionally removing them, and generating bulk demo data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oharris/listd/internal/database"
	"github.com/oharris/listd/internal/maintenance"
	"github.com/oharris/listd/internal/seed"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath := flag.String("db", "listd.db", "path to the database file")
	repair := flag.Bool("repair", false, "scan for orphaned viewings and inquiries and report them")
	del := flag.Bool("delete", false, "with -repair, remove the orphans found")
	demo := flag.Int("demo", 0, "generate this many demo properties (plus clients and viewings)")
	flag.Parse()

	db, err := database.Open(*dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if *demo > 0 {
		if err := seed.Demo(ctx, db, *demo); err != nil {
			return fmt.Errorf("generate demo data: %w", err)
		}
		slog.Info("generated demo data", "properties", *demo)
	}

	if !*repair {
		return nil
	}

	report, err := maintenance.Scan(ctx, db)
	if err != nil {
		return fmt.Errorf("scan orphans: %w", err)
	}
	slog.Info("orphan scan complete",
		"viewings_missing_client", len(report.ViewingsMissingClient),
		"viewings_missing_property", len(report.ViewingsMissingProperty),
		"inquiries_missing_property", len(report.InquiriesMissingProperty),
	)

	if report.Total() == 0 || !*del {
		return nil
	}

	removed, err := maintenance.Repair(ctx, db)
	if err != nil {
		return fmt.Errorf("repair orphans: %w", err)
	}
	slog.Info("orphan repair complete", "removed", removed)

	return nil
}
