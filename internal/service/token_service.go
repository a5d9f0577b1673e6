package service

import (
	"context"

	"github.com/spec-kit/support-crm/internal/auth"
	"github.com/spec-kit/support-crm/internal/domain"
	"github.com/spec-kit/support-crm/internal/repository"
	apperrors "github.com/spec-kit/support-crm/pkg/util"
)

// TokenService implements bearer-token issuance and refresh. Every
// failure, whatever the underlying cause, surfaces as UNAUTHORIZED so
// callers learn nothing about which step rejected them.
type TokenService struct {
	accounts repository.AccountRepository
	tokens   *auth.TokenManager
	refresh  auth.RefreshStore
}

// NewTokenService builds the service.
func NewTokenService(accounts repository.AccountRepository, tokens *auth.TokenManager, refresh auth.RefreshStore) *TokenService {
	return &TokenService{accounts: accounts, tokens: tokens, refresh: refresh}
}

// Issue validates credentials and returns a fresh access/refresh pair.
func (s *TokenService) Issue(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if !account.IsActive {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.issuePair(ctx, account)
}

// Refresh rotates the presented refresh token: the old jti is consumed
// and a new pair issued. A replayed, expired or unknown token fails.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.ParseToken(refreshToken, auth.TokenKindRefresh)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}
	accountID, err := s.refresh.Consume(ctx, claims.ID)
	if err != nil || accountID != claims.AccountID {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}
	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil || !account.IsActive {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}
	return s.issuePair(ctx, account)
}

func (s *TokenService) issuePair(ctx context.Context, account *domain.Account) (*auth.TokenPair, error) {
	pair, err := s.tokens.IssuePair(account)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.refresh.Save(ctx, pair.RefreshID, account.ID, s.tokens.RefreshTTL()); err != nil {
		return nil, apperrors.MapError(err)
	}
	return pair, nil
}
