package domain

// Client is a billable counterpart owned by a single user. Clients are created
// lazily when a document references a name the owner has not used before.
// At least one of Email or PhoneNumber must be present.
type Client struct {
	ClientID    string `json:"clientID"`
	OwnerUserID string `json:"-"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	AuditFields
}

// HasContact reports whether the client satisfies the email-or-phone requirement.
func (c Client) HasContact() bool {
	return c.Email != "" || c.PhoneNumber != ""
}

// ClientWithInvoiceCount pairs a client with the number of invoices that
// reference it, for the all-clients listing.
type ClientWithInvoiceCount struct {
	ClientID     string
	Name         string
	InvoiceCount int
}
