package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/support-crm/internal/authz"
	"github.com/spec-kit/support-crm/internal/domain"
	"github.com/spec-kit/support-crm/internal/repository"
	apperrors "github.com/spec-kit/support-crm/pkg/util"
)

// TicketService coordinates ticket workflows under the authz engine.
type TicketService struct {
	tickets  repository.TicketRepository
	accounts repository.AccountRepository
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, accounts repository.AccountRepository) *TicketService {
	return &TicketService{tickets: tickets, accounts: accounts}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Header string
	Body   string
}

// TicketUpdateInput describes the replace-style update payload. A nil
// ManagerID clears the assignment.
type TicketUpdateInput struct {
	Header    string
	Body      string
	ManagerID *string
}

// Create opens a ticket for the principal. The customer is always the
// requester; the manager starts unassigned.
func (s *TicketService) Create(ctx context.Context, principal *domain.Principal, input TicketCreateInput) (*domain.Ticket, error) {
	if err := authz.Authorize(principal, authz.ActionCreate, authz.ResourceTicket, nil); err != nil {
		return nil, err
	}
	if err := validateTicketFields(input.Header, input.Body); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Header:     input.Header,
		Body:       input.Body,
		CustomerID: principal.ID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// List returns the tickets visible to the principal. The role scope is
// pushed into the query so invisible rows are never fetched.
func (s *TicketService) List(ctx context.Context, principal *domain.Principal, limit, offset int) ([]domain.Ticket, error) {
	if err := authz.Authorize(principal, authz.ActionList, authz.ResourceTicket, nil); err != nil {
		return nil, err
	}

	scope := authz.ScopeTickets(principal)
	tickets, err := s.tickets.ListWithFilter(ctx, repository.TicketFilter{
		CustomerID: scope.CustomerID,
		ManagerID:  scope.ManagerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Get retrieves one ticket for an admin, the assigned manager, or the
// owning customer.
func (s *TicketService) Get(ctx context.Context, principal *domain.Principal, id string) (*domain.Ticket, error) {
	ticket, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(principal, authz.ActionRetrieve, authz.ResourceTicket, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Update replaces header/body and may reassign or clear the manager.
// The customer is immutable; whatever the payload carried for it has
// been dropped before this point.
func (s *TicketService) Update(ctx context.Context, principal *domain.Principal, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	ticket, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(principal, authz.ActionUpdate, authz.ResourceTicket, ticket); err != nil {
		return nil, err
	}
	if err := validateTicketFields(input.Header, input.Body); err != nil {
		return nil, err
	}
	if input.ManagerID != nil {
		if _, err := s.accounts.GetByID(ctx, *input.ManagerID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewValidationError("manager account does not exist", nil)
			}
			return nil, apperrors.MapError(err)
		}
	}

	ticket.Header = input.Header
	ticket.Body = input.Body
	ticket.ManagerID = input.ManagerID

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// Destroy deletes a ticket. Admin or assigned manager only.
func (s *TicketService) Destroy(ctx context.Context, principal *domain.Principal, id string) error {
	ticket, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(principal, authz.ActionDestroy, authz.ResourceTicket, ticket); err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, ticket.ID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *TicketService) load(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func validateTicketFields(header, body string) error {
	details := map[string]any{}
	if strings.TrimSpace(header) == "" {
		details["header"] = "required"
	}
	if strings.TrimSpace(body) == "" {
		details["body"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("header and body are required", details)
	}
	return nil
}
