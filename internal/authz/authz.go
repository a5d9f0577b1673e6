// Package authz implements the role-and-ownership authorization engine.
// Permissions are pure predicates over (principal, target) combined per
// (resource, action) with logical OR; an action with no rule entry is
// denied. Decisions are deterministic and free of I/O — callers load
// the target resource before asking.
package authz

import (
	"github.com/spec-kit/support-crm/internal/domain"
	apperrors "github.com/spec-kit/support-crm/pkg/util"
)

// Action identifies an operation against a resource collection or instance.
type Action string

const (
	ActionCreate   Action = "create"
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

// Resource identifies a protected resource kind.
type Resource string

const (
	ResourceAccount Resource = "accounts"
	ResourceTicket  Resource = "tickets"
)

// Predicate is a pure allow check. The principal may be nil for
// unauthenticated callers and the target may be nil for collection
// actions (create, list) where no instance exists yet.
type Predicate func(principal *domain.Principal, target any) bool

// Anyone admits every caller, authenticated or not. Used only for
// public registration.
func Anyone(_ *domain.Principal, _ any) bool {
	return true
}

// RoleIs admits authenticated callers holding exactly the given role.
func RoleIs(role domain.Role) Predicate {
	return func(principal *domain.Principal, _ any) bool {
		return principal != nil && principal.Role == role
	}
}

// TicketManager admits the ticket's currently assigned manager.
func TicketManager(principal *domain.Principal, target any) bool {
	ticket, ok := target.(*domain.Ticket)
	if !ok || ticket == nil || principal == nil {
		return false
	}
	return ticket.ManagedBy(principal.ID)
}

// TicketCustomer admits the account that opened the ticket.
func TicketCustomer(principal *domain.Principal, target any) bool {
	ticket, ok := target.(*domain.Ticket)
	if !ok || ticket == nil || principal == nil {
		return false
	}
	return ticket.OwnedBy(principal.ID)
}

// AccountSelf admits the caller acting on their own account.
func AccountSelf(principal *domain.Principal, target any) bool {
	account, ok := target.(*domain.Account)
	if !ok || account == nil || principal == nil {
		return false
	}
	return account.ID == principal.ID
}

// AccountOwner admits the caller acting on their own account while
// holding the USER role. Self-service writes are limited to plain
// users; elevated roles go through the ADMIN rule instead.
func AccountOwner(principal *domain.Principal, target any) bool {
	return principal != nil && principal.Role == domain.RoleUser && AccountSelf(principal, target)
}

// rules is the complete permission table. Each entry is an OR-list: the
// action is allowed iff at least one predicate passes. Missing entries
// deny.
var rules = map[Resource]map[Action][]Predicate{
	ResourceTicket: {
		ActionCreate:   {RoleIs(domain.RoleUser)},
		ActionUpdate:   {RoleIs(domain.RoleAdmin), TicketManager},
		ActionList:     {RoleIs(domain.RoleAdmin), RoleIs(domain.RoleManager), RoleIs(domain.RoleUser)},
		ActionRetrieve: {RoleIs(domain.RoleAdmin), TicketManager, TicketCustomer},
		ActionDestroy:  {RoleIs(domain.RoleAdmin), TicketManager},
	},
	ResourceAccount: {
		ActionCreate:   {Anyone},
		ActionUpdate:   {RoleIs(domain.RoleAdmin), AccountOwner},
		ActionList:     {RoleIs(domain.RoleAdmin)},
		ActionRetrieve: {RoleIs(domain.RoleAdmin), AccountSelf},
	},
}

// Authorize decides whether the principal may perform the action on the
// resource. Target carries the concrete instance for object-level
// checks (update/retrieve/destroy) and is nil for create/list. Returns
// nil on allow and a FORBIDDEN domain error on deny.
func Authorize(principal *domain.Principal, action Action, resource Resource, target any) error {
	predicates := rules[resource][action]
	for _, predicate := range predicates {
		if predicate(principal, target) {
			return nil
		}
	}
	return apperrors.NewForbidden("you do not have permission to perform this action")
}
