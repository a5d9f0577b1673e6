package dto

import (
	"time"

	"github.com/spec-kit/support-crm/internal/domain"
)

// CreateTicketRequest is the ticket creation payload. The customer is
// always the requester; any customer field in the payload is ignored.
type CreateTicketRequest struct {
	Header string `json:"header"`
	Body   string `json:"body"`
}

// UpdateTicketRequest is the ticket update payload with replace
// semantics: header and body are required, manager absent or null
// clears the assignment. CustomerID is decoded but never read; the
// owner is fixed at creation.
type UpdateTicketRequest struct {
	Header     string  `json:"header"`
	Body       string  `json:"body"`
	ManagerID  *string `json:"manager"`
	CustomerID string  `json:"customer"`
}

// TicketFull is the detail projection used for create, update and
// retrieve responses.
type TicketFull struct {
	ID        string    `json:"id"`
	Header    string    `json:"header"`
	Body      string    `json:"body"`
	Customer  string    `json:"customer"`
	Manager   *string   `json:"manager"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketLight is the list projection; it omits the body.
type TicketLight struct {
	ID        string    `json:"id"`
	Header    string    `json:"header"`
	Customer  string    `json:"customer"`
	Manager   *string   `json:"manager"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTicketFull maps a ticket to its detail projection.
func NewTicketFull(ticket *domain.Ticket) TicketFull {
	return TicketFull{
		ID:        ticket.ID,
		Header:    ticket.Header,
		Body:      ticket.Body,
		Customer:  ticket.CustomerID,
		Manager:   ticket.ManagerID,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

// NewTicketLight maps a ticket to its list projection.
func NewTicketLight(ticket *domain.Ticket) TicketLight {
	return TicketLight{
		ID:        ticket.ID,
		Header:    ticket.Header,
		Customer:  ticket.CustomerID,
		Manager:   ticket.ManagerID,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

// NewTicketLightList maps a slice of tickets.
func NewTicketLightList(tickets []domain.Ticket) []TicketLight {
	items := make([]TicketLight, 0, len(tickets))
	for i := range tickets {
		items = append(items, NewTicketLight(&tickets[i]))
	}
	return items
}
