package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-crm/internal/domain"
)

// AccountRepository defines persistence access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// GetOwned fetches the account only when it is the caller's own,
	// scoping the query by the owner's email. A foreign id surfaces
	// pgx.ErrNoRows, indistinguishable from an absent one.
	GetOwned(ctx context.Context, id, ownerEmail string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]domain.Account, error)
}

const accountColumns = `id, email, password_hash, first_name, last_name, role,
               is_active, is_staff, is_superuser, created_at, updated_at`

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (email, password_hash, first_name, last_name, role, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.Role,
		account.IsActive,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	// email and role are deliberately absent: both are immutable
	// through this path.
	const query = `
        UPDATE accounts SET password_hash=$1, first_name=$2, last_name=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.IsActive,
		account.ID,
	).Scan(&account.UpdatedAt)
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *accountRepository) GetOwned(ctx context.Context, id, ownerEmail string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1 AND email=$2`
	return r.fetchSingle(ctx, query, id, ownerEmail)
}

func (r *accountRepository) List(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := scanAccount(rows, &account); err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, rows.Err()
}

func (r *accountRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	var account domain.Account
	if err := scanAccount(r.pool.QueryRow(ctx, query, args...), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func scanAccount(row pgx.Row, account *domain.Account) error {
	return row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.FirstName,
		&account.LastName,
		&account.Role,
		&account.IsActive,
		&account.IsStaff,
		&account.IsSuperuser,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
}
