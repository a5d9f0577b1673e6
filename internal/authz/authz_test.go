package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-crm/internal/authz"
	"github.com/spec-kit/support-crm/internal/domain"
)

func principal(id string, role domain.Role) *domain.Principal {
	return &domain.Principal{ID: id, Email: id + "@example.com", Role: role}
}

func ticketOf(customerID string, managerID *string) *domain.Ticket {
	return &domain.Ticket{ID: "t1", Header: "h", Body: "b", CustomerID: customerID, ManagerID: managerID}
}

func strPtr(s string) *string { return &s }

func TestTicketRules(t *testing.T) {
	admin := principal("admin", domain.RoleAdmin)
	manager := principal("mgr", domain.RoleManager)
	user := principal("usr", domain.RoleUser)
	otherUser := principal("other", domain.RoleUser)

	assigned := ticketOf(user.ID, strPtr(manager.ID))
	unassigned := ticketOf(user.ID, nil)

	tests := []struct {
		name      string
		principal *domain.Principal
		action    authz.Action
		target    *domain.Ticket
		allowed   bool
	}{
		{"user creates", user, authz.ActionCreate, nil, true},
		{"manager cannot create", manager, authz.ActionCreate, nil, false},
		{"admin cannot create", admin, authz.ActionCreate, nil, false},
		{"unauthenticated cannot create", nil, authz.ActionCreate, nil, false},

		{"admin updates", admin, authz.ActionUpdate, assigned, true},
		{"assigned manager updates", manager, authz.ActionUpdate, assigned, true},
		{"customer cannot update", user, authz.ActionUpdate, assigned, false},
		{"customer cannot update unassigned", user, authz.ActionUpdate, unassigned, false},
		{"manager cannot update unassigned ticket", manager, authz.ActionUpdate, unassigned, false},

		{"admin lists", admin, authz.ActionList, nil, true},
		{"manager lists", manager, authz.ActionList, nil, true},
		{"user lists", user, authz.ActionList, nil, true},
		{"unauthenticated cannot list", nil, authz.ActionList, nil, false},

		{"admin retrieves", admin, authz.ActionRetrieve, assigned, true},
		{"assigned manager retrieves", manager, authz.ActionRetrieve, assigned, true},
		{"customer retrieves", user, authz.ActionRetrieve, assigned, true},
		{"foreign user cannot retrieve", otherUser, authz.ActionRetrieve, assigned, false},

		{"admin destroys", admin, authz.ActionDestroy, assigned, true},
		{"assigned manager destroys", manager, authz.ActionDestroy, assigned, true},
		{"customer cannot destroy", user, authz.ActionDestroy, assigned, false},
		{"customer cannot destroy unassigned", user, authz.ActionDestroy, unassigned, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target any
			if tt.target != nil {
				target = tt.target
			}
			err := authz.Authorize(tt.principal, tt.action, authz.ResourceTicket, target)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAccountRules(t *testing.T) {
	admin := principal("admin", domain.RoleAdmin)
	manager := principal("mgr", domain.RoleManager)
	user := principal("usr", domain.RoleUser)

	own := &domain.Account{ID: user.ID, Email: user.Email, Role: domain.RoleUser}
	foreign := &domain.Account{ID: "someone", Email: "someone@example.com", Role: domain.RoleUser}
	managerOwn := &domain.Account{ID: manager.ID, Email: manager.Email, Role: domain.RoleManager}

	tests := []struct {
		name      string
		principal *domain.Principal
		action    authz.Action
		target    *domain.Account
		allowed   bool
	}{
		{"unauthenticated registers", nil, authz.ActionCreate, nil, true},
		{"authenticated registers", user, authz.ActionCreate, nil, true},

		{"admin updates any", admin, authz.ActionUpdate, foreign, true},
		{"user updates self", user, authz.ActionUpdate, own, true},
		{"user cannot update foreign", user, authz.ActionUpdate, foreign, false},
		{"manager cannot update own account", manager, authz.ActionUpdate, managerOwn, false},

		{"admin lists", admin, authz.ActionList, nil, true},
		{"manager cannot list", manager, authz.ActionList, nil, false},
		{"user cannot list", user, authz.ActionList, nil, false},

		{"admin retrieves any", admin, authz.ActionRetrieve, foreign, true},
		{"user retrieves self", user, authz.ActionRetrieve, own, true},
		{"manager retrieves self", manager, authz.ActionRetrieve, managerOwn, true},
		{"user cannot retrieve foreign", user, authz.ActionRetrieve, foreign, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target any
			if tt.target != nil {
				target = tt.target
			}
			err := authz.Authorize(tt.principal, tt.action, authz.ResourceAccount, target)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFailClosed(t *testing.T) {
	admin := principal("admin", domain.RoleAdmin)

	// No destroy rule exists for accounts; even an admin is denied.
	err := authz.Authorize(admin, authz.ActionDestroy, authz.ResourceAccount, &domain.Account{ID: "x"})
	require.Error(t, err)

	// Unknown resources and actions deny for everyone.
	require.Error(t, authz.Authorize(admin, authz.Action("purge"), authz.ResourceTicket, nil))
	require.Error(t, authz.Authorize(admin, authz.ActionList, authz.Resource("projects"), nil))
}

func TestObjectPredicatesRequireTarget(t *testing.T) {
	manager := principal("mgr", domain.RoleManager)

	// A manager without a target ticket has no matching update
	// predicate; only the admin role rule could pass.
	assert.Error(t, authz.Authorize(manager, authz.ActionUpdate, authz.ResourceTicket, nil))

	// A wrongly-typed target never matches ownership predicates.
	assert.Error(t, authz.Authorize(manager, authz.ActionUpdate, authz.ResourceTicket, &domain.Account{ID: manager.ID}))
}
