package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the decoded claim of a credential token.
// It lives only for the duration of the request that presented the token.
type Identity struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
