package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/support-crm/internal/domain"
)

// TokenKind distinguishes access from refresh tokens. A refresh token
// is never accepted on resource endpoints and vice versa.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenManager issues and validates the JWT access/refresh pair.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a manager with the given lifetimes.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Claims describes the JWT payload.
type Claims struct {
	AccountID string      `json:"sub"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Kind      TokenKind   `json:"kind"`
	jwt.RegisteredClaims
}

// TokenPair is the issuance result: a short-lived access token and a
// longer-lived refresh token carrying a jti for revocation.
type TokenPair struct {
	Access           string
	Refresh          string
	RefreshID        string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// IssuePair signs a fresh access/refresh pair for the account.
func (tm *TokenManager) IssuePair(account *domain.Account) (*TokenPair, error) {
	access, accessExp, err := tm.sign(account, TokenKindAccess, "", tm.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshID := uuid.NewString()
	refresh, refreshExp, err := tm.sign(account, TokenKindRefresh, refreshID, tm.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		Access:           access,
		Refresh:          refresh,
		RefreshID:        refreshID,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// RefreshTTL returns the configured refresh token lifetime.
func (tm *TokenManager) RefreshTTL() time.Duration {
	return tm.refreshTTL
}

func (tm *TokenManager) sign(account *domain.Account, kind TokenKind, jti string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates signature and expiry and returns claims of the
// expected kind.
func (tm *TokenManager) ParseToken(tokenStr string, kind TokenKind) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Kind != kind {
		return nil, errors.New("unexpected token kind")
	}
	return claims, nil
}
