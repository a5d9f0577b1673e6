package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-crm/internal/auth"
	"github.com/spec-kit/support-crm/internal/domain"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:    "acc-1",
		Email: "jane@example.com",
		Role:  domain.RoleManager,
	}
}

func TestIssuePairRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("secret", 30*time.Minute, 24*time.Hour)

	pair, err := tm.IssuePair(testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	require.NotEmpty(t, pair.RefreshID)

	access, err := tm.ParseToken(pair.Access, auth.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", access.AccountID)
	assert.Equal(t, "jane@example.com", access.Email)
	assert.Equal(t, domain.RoleManager, access.Role)

	refresh, err := tm.ParseToken(pair.Refresh, auth.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshID, refresh.ID)
}

func TestParseTokenRejectsWrongKind(t *testing.T) {
	tm := auth.NewTokenManager("secret", 30*time.Minute, 24*time.Hour)

	pair, err := tm.IssuePair(testAccount())
	require.NoError(t, err)

	_, err = tm.ParseToken(pair.Refresh, auth.TokenKindAccess)
	assert.Error(t, err)
	_, err = tm.ParseToken(pair.Access, auth.TokenKindRefresh)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("secret", 30*time.Minute, 24*time.Hour)
	other := auth.NewTokenManager("different", 30*time.Minute, 24*time.Hour)

	pair, err := tm.IssuePair(testAccount())
	require.NoError(t, err)

	_, err = other.ParseToken(pair.Access, auth.TokenKindAccess)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Nanosecond, time.Nanosecond)

	pair, err := tm.IssuePair(testAccount())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.ParseToken(pair.Access, auth.TokenKindAccess)
	assert.Error(t, err)
}

func TestPasswordHashNeverEqualsPlaintext(t *testing.T) {
	hash, err := auth.HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.NoError(t, auth.ComparePassword(hash, "hunter2"))
	assert.Error(t, auth.ComparePassword(hash, "hunter3"))
}
