package authz

import "github.com/spec-kit/support-crm/internal/domain"

// TicketScope narrows a ticket query to the subset the principal may
// see. Nil fields mean unconstrained. The scope is translated into SQL
// WHERE clauses by the repository so invisible tickets are never
// fetched, keeping existence and counts from leaking.
type TicketScope struct {
	CustomerID *string
	ManagerID  *string
}

// ScopeTickets returns the list scope for the principal: ADMIN sees
// everything, MANAGER sees tickets assigned to them, USER sees tickets
// they opened.
func ScopeTickets(principal *domain.Principal) TicketScope {
	switch principal.Role {
	case domain.RoleAdmin:
		return TicketScope{}
	case domain.RoleManager:
		return TicketScope{ManagerID: &principal.ID}
	default:
		return TicketScope{CustomerID: &principal.ID}
	}
}
