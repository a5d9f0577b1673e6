package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/support-crm/internal/auth"
	"github.com/spec-kit/support-crm/internal/authz"
	"github.com/spec-kit/support-crm/internal/domain"
	"github.com/spec-kit/support-crm/internal/repository"
	apperrors "github.com/spec-kit/support-crm/pkg/util"
)

// AccountService coordinates account registration, lookup and update.
type AccountService struct {
	accounts   repository.AccountRepository
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(accounts repository.AccountRepository, bcryptCost int) *AccountService {
	return &AccountService{accounts: accounts, bcryptCost: bcryptCost}
}

// AccountUpdateInput describes the writable account fields. Nil
// pointers leave the stored value unchanged; an empty password keeps
// the current hash.
type AccountUpdateInput struct {
	Password  string
	FirstName *string
	LastName  *string
}

// Register creates an account through public self-registration. The
// role is forced to USER regardless of the payload and the password is
// stored as a bcrypt hash, never as given.
func (s *AccountService) Register(ctx context.Context, principal *domain.Principal, email, password string) (*domain.Account, error) {
	if err := authz.Authorize(principal, authz.ActionCreate, authz.ResourceAccount, nil); err != nil {
		return nil, err
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

// List returns all accounts. Admin only.
func (s *AccountService) List(ctx context.Context, principal *domain.Principal, limit, offset int) ([]domain.Account, error) {
	if err := authz.Authorize(principal, authz.ActionList, authz.ResourceAccount, nil); err != nil {
		return nil, err
	}
	accounts, err := s.accounts.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return accounts, nil
}

// Get retrieves one account. Admins query the full set; everyone else
// queries through an owner-scoped lookup, so a foreign id yields the
// same 404 as a missing one.
func (s *AccountService) Get(ctx context.Context, principal *domain.Principal, id string) (*domain.Account, error) {
	account, err := s.loadScoped(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(principal, authz.ActionRetrieve, authz.ResourceAccount, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Update mutates the writable fields of an account. Email and role are
// never touched regardless of the payload.
func (s *AccountService) Update(ctx context.Context, principal *domain.Principal, id string, input AccountUpdateInput) (*domain.Account, error) {
	account, err := s.loadScoped(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(principal, authz.ActionUpdate, authz.ResourceAccount, account); err != nil {
		return nil, err
	}

	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		account.PasswordHash = hash
	}
	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

func (s *AccountService) loadScoped(ctx context.Context, principal *domain.Principal, id string) (*domain.Account, error) {
	if principal == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	var (
		account *domain.Account
		err     error
	)
	if principal.Role == domain.RoleAdmin {
		account, err = s.accounts.GetByID(ctx, id)
	} else {
		account, err = s.accounts.GetOwned(ctx, id, principal.Email)
	}
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("account", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return account, nil
}
