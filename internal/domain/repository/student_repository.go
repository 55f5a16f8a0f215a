package repository

import (
	"context"
	"errors"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStudentNotFound is returned when no student matches the lookup.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository defines persistence operations for student accounts.
type StudentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)
	// List returns one page of students, newest first, and the total row count.
	List(ctx context.Context, offset, limit int) ([]*entity.Student, int64, error)
	// Create persists a new student. A duplicate email yields a conflict error.
	Create(ctx context.Context, student *entity.Student) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
