package domain

// Client represents a prospective buyer or tenant managed by an agent.
type Client struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ClientSummary is the public-safe subset of Client embedded in enriched
// viewing records.
type ClientSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Summary returns the public-safe view of the client.
func (c *Client) Summary() *ClientSummary {
	return &ClientSummary{
		ID:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}
