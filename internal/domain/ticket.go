package domain

import "time"

// Ticket is the aggregate for support requests. CustomerID is fixed at
// creation to the requesting account and never reassigned; ManagerID is
// nil until a manager is assigned.
type Ticket struct {
	ID         string
	Header     string
	Body       string
	CustomerID string
	ManagerID  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ManagedBy reports whether the given account is the assigned manager.
func (t *Ticket) ManagedBy(accountID string) bool {
	return t.ManagerID != nil && *t.ManagerID == accountID
}

// OwnedBy reports whether the given account is the ticket's customer.
func (t *Ticket) OwnedBy(accountID string) bool {
	return t.CustomerID == accountID
}
