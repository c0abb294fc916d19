package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims is what the planner needs from an access token issued by the
// identity service.
type TokenClaims struct {
	UserID    uuid.UUID
	Issuer    string
	ExpiresAt time.Time
}

// TokenService verifies access tokens. Tokens are never issued here.
type TokenService interface {
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
