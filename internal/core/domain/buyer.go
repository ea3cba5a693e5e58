package domain

// Buyer represents a customer that invoices are issued to.
// Passive reference data; no lifecycle logic.
type Buyer struct {
	BuyerID      string `json:"buyerID"` // Primary Key (UUID)
	BuyerName    string `json:"buyerName"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	AuditFields
}
