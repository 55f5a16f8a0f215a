// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when no admin matches the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines persistence operations for admin accounts.
type AdminRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// Create persists a new admin. A duplicate email yields a conflict error.
	Create(ctx context.Context, admin *entity.Admin) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
