package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a placement-cell administrator account.
type Admin struct {
	ID           uuid.UUID // Primary key, generated by the database.
	Name         string    // Display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt digest, never serialised.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
