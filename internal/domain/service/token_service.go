package service

import (
	"time"

	"tnp/internal/domain/entity"
)

// TokenService issues and verifies signed credential tokens.
type TokenService interface {
	// Issue signs a token carrying the identity's id, name, email and role.
	Issue(identity entity.Identity) (string, error)

	// Verify checks signature and expiry and returns the decoded identity.
	Verify(token string) (*entity.Identity, error)

	// TTL returns the validity window of issued tokens.
	TTL() time.Duration
}
