package domain

// Inquiry statuses.
const (
	InquiryNew       = "New"
	InquiryResponded = "Responded"
)

// Inquiry is a public question about a property.
type Inquiry struct {
	ID          string `json:"id"`
	PropertyID  string `json:"propertyId"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone,omitempty"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
}

// InquiryInput holds the fields a public caller supplies when inquiring.
type InquiryInput struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}
