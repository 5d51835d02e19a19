package model

import "github.com/google/uuid"

// TokenManager generates and validates identity tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, email string) (string, error)
	Parse(token string) (Identity, error)
}

// Identity is the authenticated caller attached to a request after token
// verification. It lives only for the duration of the call.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
