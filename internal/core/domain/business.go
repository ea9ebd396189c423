package domain

// Business is the issuing party of an invoice or quote, owned by a single
// user and created lazily alongside documents, like Client.
type Business struct {
	BusinessID  string `json:"businessID"`
	OwnerUserID string `json:"-"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	ABN         string `json:"abn,omitempty"` // Australian Business Number
	AuditFields
}
