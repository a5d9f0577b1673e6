package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-crm/internal/api/dto"
	"github.com/spec-kit/support-crm/internal/domain"
)

func sampleAccount() *domain.Account {
	return &domain.Account{
		ID:           "a1",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$secrethash",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         domain.RoleManager,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestAccountFullNeverLeaksSensitiveFields(t *testing.T) {
	payload, err := json.Marshal(dto.NewAccountFull(sampleAccount()))
	require.NoError(t, err)

	encoded := string(payload)
	assert.NotContains(t, encoded, "secrethash")
	assert.NotContains(t, encoded, "password")
	assert.NotContains(t, encoded, "is_staff")
	assert.NotContains(t, encoded, "is_superuser")
	assert.Contains(t, encoded, `"email":"jane@example.com"`)
	assert.Contains(t, encoded, `"is_active":true`)
}

func TestAccountLightFieldSet(t *testing.T) {
	payload, err := json.Marshal(dto.NewAccountLight(sampleAccount()))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.ElementsMatch(t,
		[]string{"email", "first_name", "last_name", "role"},
		keysOf(fields),
	)
}

func TestTicketLightOmitsBody(t *testing.T) {
	ticket := &domain.Ticket{
		ID:         "t1",
		Header:     "printer on fire",
		Body:       "it is very much on fire",
		CustomerID: "a1",
	}

	light, err := json.Marshal(dto.NewTicketLight(ticket))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(light), "body"))
	assert.False(t, strings.Contains(string(light), "very much"))

	full, err := json.Marshal(dto.NewTicketFull(ticket))
	require.NoError(t, err)
	assert.Contains(t, string(full), `"body":"it is very much on fire"`)
}

func TestTicketFullNullManager(t *testing.T) {
	ticket := &domain.Ticket{ID: "t1", Header: "h", Body: "b", CustomerID: "a1"}

	payload, err := json.Marshal(dto.NewTicketFull(ticket))
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"manager":null`)
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
