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

// imagePool holds the stock listing photos cycled through seeded
// properties.
var imagePool = []string{
	"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1580587771525-78b9dba3b914?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1570129477492-45c003edd2be?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1507089947368-19c1da9775ae?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1572120360610-d971b9d7767c?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1568605114967-8130f3a36994?auto=format&fit=crop&w=600&q=80",
	"https://images.unsplash.com/photo-1599423300746-b62533397364?auto=format&fit=crop&w=600&q=80",
}

type propertyDef struct {
	title     string
	city      string
	address   string
	ptype     string
	price     float64
	bedrooms  int
	bathrooms int
	amenities []string
}

var defaultProperties = []propertyDef{
	{title: "Sunny two-bed flat", city: "Lisbon", address: "12 Rua das Flores", ptype: "Apartment", price: 285000, bedrooms: 2, bathrooms: 1, amenities: []string{"Balcony", "Elevator"}},
	{title: "Riverside loft", city: "Porto", address: "3 Cais da Ribeira", ptype: "Apartment", price: 340000, bedrooms: 1, bathrooms: 1, amenities: []string{"River View", "Elevator"}},
	{title: "Family house with garden", city: "Lisbon", address: "45 Avenida Central", ptype: "House", price: 520000, bedrooms: 4, bathrooms: 3, amenities: []string{"Garden", "Garage", "Pool"}},
	{title: "Compact studio", city: "Faro", address: "8 Largo do Mar", ptype: "Studio", price: 145000, bedrooms: 0, bathrooms: 1, amenities: []string{"Furnished"}},
	{title: "Penthouse with terrace", city: "Lisbon", address: "1 Praça Alta", ptype: "Apartment", price: 790000, bedrooms: 3, bathrooms: 2, amenities: []string{"Terrace", "Pool", "Elevator", "Garage"}},
	{title: "Country villa", city: "Évora", address: "Quinta do Sol", ptype: "House", price: 610000, bedrooms: 5, bathrooms: 4, amenities: []string{"Pool", "Garden", "Fireplace"}},
}

// Properties inserts the default listings if none exist yet. Creation
// timestamps are spaced a minute apart so newest-first ordering is
// deterministic.
func Properties(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if count > 0 {
		return nil
	}

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, pd := range defaultProperties {
		id := uuid.NewString()
		ts := store.FormatTime(base.Add(time.Duration(i) * time.Minute))

		if _, err := db.ExecContext(ctx,
			`INSERT INTO properties (id, title, city, address, type, price, bedrooms, bathrooms, description, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, '', ?, ?, ?)`,
			id, pd.title, pd.city, pd.address, pd.ptype, pd.price, pd.bedrooms, pd.bathrooms,
			domain.StatusAvailable, ts, ts,
		); err != nil {
			return fmt.Errorf("insert property %q: %w", pd.title, err)
		}

		for _, a := range pd.amenities {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO property_amenities (property_id, amenity) VALUES (?, ?)`, id, a,
			); err != nil {
				return fmt.Errorf("insert amenity %q: %w", a, err)
			}
		}

		// Three photos per listing, rotated through the pool.
		for pos := 0; pos < 3; pos++ {
			url := imagePool[(i+pos)%len(imagePool)]
			if _, err := db.ExecContext(ctx,
				`INSERT INTO property_images (property_id, position, url) VALUES (?, ?, ?)`, id, pos, url,
			); err != nil {
				return fmt.Errorf("insert image: %w", err)
			}
		}
	}

	return nil
}
