package dto

// TokenRequest is the credential payload for POST /token/.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenRefreshRequest is the payload for POST /token/refresh/.
type TokenRefreshRequest struct {
	Refresh string `json:"refresh"`
}

// TokenPairResponse wraps the issued pair.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
