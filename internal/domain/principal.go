package domain

// Principal is the authenticated caller's identity, resolved from a
// validated bearer token. A nil *Principal means the request is
// unauthenticated; it is passed explicitly through every authorization
// and projection call, never stashed in ambient state.
type Principal struct {
	ID    string
	Email string
	Role  Role
}

// PrincipalOf derives a principal from a loaded account.
func PrincipalOf(account *Account) *Principal {
	return &Principal{ID: account.ID, Email: account.Email, Role: account.Role}
}
