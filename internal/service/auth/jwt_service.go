// Package auth provides session token issuance/verification and password
// hashing for the API.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Principal is the public identity carried inside a session token and
// exposed to handlers after verification.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// JWTService defines operations for managing JWT session tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the user's id, name
	// and email. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, principal Principal) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, malformed, ...).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded contents of a session token.
type Claims struct {
	// Principal is the identity the token was issued for.
	Principal Principal

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
