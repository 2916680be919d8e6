package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the identity carried inside an access token.
type Payload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Scope is the identity attached to a request after authentication.
type Scope struct {
	UserID string
	Email  string
}
