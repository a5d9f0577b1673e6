// Package dto holds wire-level projections. Each projection is an
// explicit field list with a pure mapping function from the domain
// entity; nothing is derived by reflection, and no projection carries
// the password hash or the staff/superuser flags.
package dto

import (
	"time"

	"github.com/spec-kit/support-crm/internal/domain"
)

// RegisterAccountRequest is the public registration payload. It admits
// email and password only; submitted role or extra fields are dropped
// at parse time, and the service forces role USER.
type RegisterAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAccountRequest is the self/admin account update payload.
// Email and Role are decoded so clients sending them get no error, but
// the mapping never reads them: both fields are immutable through
// updates.
type UpdateAccountRequest struct {
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
}

// AccountLight is the list-view projection.
type AccountLight struct {
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      domain.Role `json:"role"`
}

// AccountFull is the detail projection: everything except the password
// hash and the staff/superuser flags.
type AccountFull struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      domain.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewAccountLight maps an account to its list projection.
func NewAccountLight(account *domain.Account) AccountLight {
	return AccountLight{
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      account.Role,
	}
}

// NewAccountFull maps an account to its detail projection.
func NewAccountFull(account *domain.Account) AccountFull {
	return AccountFull{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      account.Role,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// NewAccountLightList maps a slice of accounts.
func NewAccountLightList(accounts []domain.Account) []AccountLight {
	items := make([]AccountLight, 0, len(accounts))
	for i := range accounts {
		items = append(items, NewAccountLight(&accounts[i]))
	}
	return items
}
