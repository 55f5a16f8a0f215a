package usecase

import (
	"context"
	"time"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateExperienceInput defines a new experience record for the caller.
type CreateExperienceInput struct {
	StudentID    uuid.UUID
	Type         entity.ExpType
	Title        string
	Organisation string
	Description  *string
	StartDate    time.Time
	EndDate      *time.Time
	Technologies []string
}

// UpdateExperienceInput carries a partial update; nil fields are left unchanged.
// ClearEndDate removes the end date and takes precedence over EndDate.
type UpdateExperienceInput struct {
	ID           uuid.UUID
	StudentID    uuid.UUID
	Type         *entity.ExpType
	Title        *string
	Organisation *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Technologies []string
}

// ExperienceUsecase defines experience record operations. Every call is scoped to the owning student.
type ExperienceUsecase interface {
	CreateExperience(ctx context.Context, input *CreateExperienceInput) (*entity.Experience, error)
	ListExperiences(ctx context.Context, studentID uuid.UUID) ([]*entity.Experience, error)
	UpdateExperience(ctx context.Context, input *UpdateExperienceInput) (*entity.Experience, error)
	DeleteExperience(ctx context.Context, id, studentID uuid.UUID) error
}
