package domain

// Viewing statuses.
const (
	ViewingScheduled = "Scheduled"
	ViewingCompleted = "Completed"
	ViewingCancelled = "Cancelled"
)

// Viewing is a scheduled visit of a client to a property. ClientID and
// PropertyID are plain references; the schema does not enforce them, so a
// viewing can outlive the records it points at (see maintenance).
type Viewing struct {
	ID          string `json:"id"`
	PropertyID  string `json:"propertyId"`
	ClientID    string `json:"clientId"`
	ViewingDate string `json:"viewingDate"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ViewingInput holds the writable fields for create and update.
type ViewingInput struct {
	PropertyID  string `json:"propertyId"`
	ClientID    string `json:"clientId"`
	ViewingDate string `json:"viewingDate"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// ViewingWithClient is a viewing enriched with the referenced client's
// public-safe fields. When the client reference does not resolve, Client is
// nil and ClientMissing is set; the record itself is still returned.
type ViewingWithClient struct {
	Viewing
	Client        *ClientSummary `json:"client"`
	ClientMissing bool           `json:"clientMissing,omitempty"`
}
