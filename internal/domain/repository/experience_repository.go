package repository

import (
	"context"
	"errors"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExperienceNotFound is returned when no experience matches the lookup.
var ErrExperienceNotFound = errors.New("experience not found")

// ExperienceRepository defines persistence operations for experience records.
type ExperienceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	// ListByStudent returns the student's experiences ordered by start date, most recent first.
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Experience, error)
	Create(ctx context.Context, exp *entity.Experience) error
	Update(ctx context.Context, exp *entity.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}
