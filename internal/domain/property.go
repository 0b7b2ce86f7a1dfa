package domain

// Property statuses. Archived properties never appear in search results;
// archiving is an explicit agent action, not a filter option.
const (
	StatusAvailable = "Available"
	StatusArchived  = "Archived"
	StatusPending   = "Pending"
)

// Location is the structured location of a property. City is the field
// search criteria match against.
type Location struct {
	City    string `json:"city"`
	Address string `json:"address,omitempty"`
}

// Property represents a single listing.
type Property struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    Location `json:"location"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// PropertyInput holds the writable fields for create and update. Status and
// CreatedAt are assigned by the store on create.
type PropertyInput struct {
	Title       string   `json:"title"`
	Location    Location `json:"location"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}
