package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oharris/listd/internal/domain"
	"github.com/oharris/listd/internal/store"
)

var demoCities = []string{"Lisbon", "Porto", "Faro", "Coimbra", "Braga", "Évora"}
var demoTypes = []string{"Apartment", "House", "Studio", "Townhouse"}
var demoAmenities = []string{"Pool", "Garden", "Garage", "Balcony", "Elevator", "Furnished", "Terrace", "Fireplace"}

// Demo bulk-generates n fake properties plus a handful of clients with
// scheduled viewings, going through the regular stores. Unlike Seed it is
// not guarded: every run adds more data. Intended for the offline
// maintenance tool only.
func Demo(ctx context.Context, db *sql.DB, n int) error {
	s := store.New(db)

	for i := 0; i < n; i++ {
		in := &domain.PropertyInput{
			Title: fmt.Sprintf("Demo listing %d", i+1),
			Location: domain.Location{
				City:    demoCities[i%len(demoCities)],
				Address: fmt.Sprintf("%d Demo Street", i+1),
			},
			Type:      demoTypes[i%len(demoTypes)],
			Price:     120000 + float64(i%40)*15000,
			Bedrooms:  i%5 + 1,
			Bathrooms: i%3 + 1,
			Amenities: []string{
				demoAmenities[i%len(demoAmenities)],
				demoAmenities[(i+3)%len(demoAmenities)],
			},
			Images: []string{
				imagePool[i%len(imagePool)],
				imagePool[(i+1)%len(imagePool)],
			},
		}
		if _, err := s.Properties.Create(ctx, in); err != nil {
			return fmt.Errorf("demo property %d: %w", i+1, err)
		}
	}

	for i := 0; i < 3; i++ {
		c, err := s.Clients.Create(ctx, &store.ClientInput{
			FullName: fmt.Sprintf("Demo Client %d", i+1),
			Email:    fmt.Sprintf("demo%d@example.com", i+1),
			Phone:    fmt.Sprintf("+351 910 000 %03d", i+1),
			Status:   "Active",
		})
		if err != nil {
			return fmt.Errorf("demo client %d: %w", i+1, err)
		}

		propertyIDs, err := idColumn(ctx, db, `SELECT id FROM properties ORDER BY rowid DESC LIMIT 3`)
		if err != nil {
			return err
		}
		if len(propertyIDs) == 0 {
			continue
		}

		when := time.Now().AddDate(0, 0, i+1).Format(time.RFC3339)
		if _, err := s.Viewings.Create(ctx, &domain.ViewingInput{
			PropertyID:  propertyIDs[i%len(propertyIDs)],
			ClientID:    c.ID,
			ViewingDate: when,
		}); err != nil {
			return fmt.Errorf("demo viewing %d: %w", i+1, err)
		}
	}

	return nil
}
