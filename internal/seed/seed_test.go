package seed_test

import (
	"context"
	"testing"

	"github.com/oharris/listd/internal/seed"
	"github.com/oharris/listd/internal/testhelpers"
)

func TestSeedIdempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := seed.Seed(ctx, db); err != nil {
			t.Fatalf("seed (run %d): %v", i+1, err)
		}
	}

	var properties, clients, viewings int
	if err := db.QueryRow(`SELECT COUNT(*) FROM properties`).Scan(&properties); err != nil {
		t.Fatalf("count properties: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&clients); err != nil {
		t.Fatalf("count clients: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM viewings`).Scan(&viewings); err != nil {
		t.Fatalf("count viewings: %v", err)
	}

	if properties != 6 {
		t.Errorf("properties = %d, want 6", properties)
	}
	if clients != 3 {
		t.Errorf("clients = %d, want 3", clients)
	}
	if viewings != 3 {
		t.Errorf("viewings = %d, want 3", viewings)
	}
}

func TestSeedDataIsSearchable(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := seed.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var available int
	if err := db.QueryRow(`SELECT COUNT(*) FROM properties WHERE status = 'Available'`).Scan(&available); err != nil {
		t.Fatalf("count available: %v", err)
	}
	if available != 6 {
		t.Errorf("available = %d, want all 6 seeded listings", available)
	}

	var images int
	if err := db.QueryRow(`SELECT COUNT(*) FROM property_images`).Scan(&images); err != nil {
		t.Fatalf("count images: %v", err)
	}
	if images != 18 {
		t.Errorf("images = %d, want 3 per listing", images)
	}
}

func TestDemoGeneratesRequestedVolume(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := seed.Demo(ctx, db, 25); err != nil {
		t.Fatalf("demo: %v", err)
	}

	var properties, clients int
	if err := db.QueryRow(`SELECT COUNT(*) FROM properties`).Scan(&properties); err != nil {
		t.Fatalf("count properties: %v", err)
	}
	if properties != 25 {
		t.Errorf("properties = %d, want 25", properties)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&clients); err != nil {
		t.Fatalf("count clients: %v", err)
	}
	if clients != 3 {
		t.Errorf("clients = %d, want 3", clients)
	}

	// Demo is deliberately unguarded; a second run adds more.
	if err := seed.Demo(ctx, db, 5); err != nil {
		t.Fatalf("second demo: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM properties`).Scan(&properties); err != nil {
		t.Fatalf("recount properties: %v", err)
	}
	if properties != 30 {
		t.Errorf("properties = %d, want 30", properties)
	}
}
