package service_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/support-crm/internal/domain"
	"github.com/spec-kit/support-crm/internal/repository"
)

// mockAccountRepository is an in-memory repository.AccountRepository.
type mockAccountRepository struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newMockAccountRepository() *mockAccountRepository {
	return &mockAccountRepository{accounts: map[string]*domain.Account{}}
}

func (m *mockAccountRepository) Create(_ context.Context, account *domain.Account) error {
	m.nextID++
	account.ID = fmt.Sprintf("acc-%d", m.nextID)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	stored := *account
	m.accounts[account.ID] = &stored
	return nil
}

func (m *mockAccountRepository) Update(_ context.Context, account *domain.Account) error {
	stored, ok := m.accounts[account.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	// mirror the SQL: email and role are not in the SET list
	stored.PasswordHash = account.PasswordHash
	stored.FirstName = account.FirstName
	stored.LastName = account.LastName
	stored.IsActive = account.IsActive
	stored.UpdatedAt = time.Now()
	account.UpdatedAt = stored.UpdatedAt
	return nil
}

func (m *mockAccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	stored, ok := m.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (m *mockAccountRepository) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, stored := range m.accounts {
		if stored.Email == email {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAccountRepository) GetOwned(_ context.Context, id, ownerEmail string) (*domain.Account, error) {
	stored, ok := m.accounts[id]
	if !ok || stored.Email != ownerEmail {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (m *mockAccountRepository) List(_ context.Context, limit, offset int) ([]domain.Account, error) {
	var result []domain.Account
	for _, stored := range m.accounts {
		result = append(result, *stored)
	}
	return result, nil
}

// mockTicketRepository is an in-memory repository.TicketRepository.
type mockTicketRepository struct {
	tickets map[string]*domain.Ticket
	nextID  int
}

func newMockTicketRepository() *mockTicketRepository {
	return &mockTicketRepository{tickets: map[string]*domain.Ticket{}}
}

func (m *mockTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	m.nextID++
	ticket.ID = fmt.Sprintf("tkt-%d", m.nextID)
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	stored := *ticket
	m.tickets[ticket.ID] = &stored
	return nil
}

func (m *mockTicketRepository) Update(_ context.Context, ticket *domain.Ticket) error {
	stored, ok := m.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	// mirror the SQL: customer_id is not in the SET list
	stored.Header = ticket.Header
	stored.Body = ticket.Body
	stored.ManagerID = ticket.ManagerID
	stored.UpdatedAt = time.Now()
	ticket.UpdatedAt = stored.UpdatedAt
	return nil
}

func (m *mockTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	stored, ok := m.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	return &copied, nil
}

func (m *mockTicketRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.tickets, id)
	return nil
}

func (m *mockTicketRepository) ListWithFilter(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, stored := range m.tickets {
		if filter.CustomerID != nil && stored.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ManagerID != nil && !stored.ManagedBy(*filter.ManagerID) {
			continue
		}
		result = append(result, *stored)
	}
	return result, nil
}

// mockRefreshStore is an in-memory auth.RefreshStore.
type mockRefreshStore struct {
	entries map[string]string
}

func newMockRefreshStore() *mockRefreshStore {
	return &mockRefreshStore{entries: map[string]string{}}
}

func (m *mockRefreshStore) Save(_ context.Context, tokenID, accountID string, _ time.Duration) error {
	m.entries[tokenID] = accountID
	return nil
}

func (m *mockRefreshStore) Consume(_ context.Context, tokenID string) (string, error) {
	accountID, ok := m.entries[tokenID]
	if !ok {
		return "", fmt.Errorf("refresh token not found")
	}
	delete(m.entries, tokenID)
	return accountID, nil
}
