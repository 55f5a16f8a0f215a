package postgres

import (
	"context"

	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// experienceRepository implements the repository.ExperienceRepository interface.
type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository is the constructor for experienceRepository.
func NewExperienceRepository(db *gorm.DB) repository.ExperienceRepository {
	return &experienceRepository{
		db: db,
	}
}

func (repo *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	var expM model.ExperienceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&expM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExperienceNotFound
		}

		return nil, errors.Wrap(err, "failed to find experience by ID")
	}

	return toExperienceDomain(&expM), nil
}

// ListByStudent retrieves all experiences of a student, most recent start date first.
func (repo *experienceRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Experience, error) {
	var expModels []*model.ExperienceModel

	if err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("start_date DESC").
		Find(&expModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find experiences by student")
	}

	experiences := make([]*entity.Experience, 0, len(expModels))
	for _, expM := range expModels {
		experiences = append(experiences, toExperienceDomain(expM))
	}

	return experiences, nil
}

func (repo *experienceRepository) Create(ctx context.Context, exp *entity.Experience) error {
	expM := fromExperienceDomain(exp)

	if err := repo.db.WithContext(ctx).Create(expM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStudentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create experience")
	}

	exp.ID = expM.ID
	exp.CreatedAt = expM.CreatedAt
	exp.UpdatedAt = expM.UpdatedAt

	return nil
}

// Update overwrites the mutable columns of an existing experience.
func (repo *experienceRepository) Update(ctx context.Context, exp *entity.Experience) error {
	expM := fromExperienceDomain(exp)

	result := repo.db.WithContext(ctx).
		Model(expM).
		Select("type", "title", "organisation", "description", "start_date", "end_date", "technologies", "updated_at").
		Updates(expM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update experience")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExperienceNotFound
	}

	exp.UpdatedAt = expM.UpdatedAt

	return nil
}

func (repo *experienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExperienceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete experience")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExperienceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toExperienceDomain(data *model.ExperienceModel) *entity.Experience {
	if data == nil {
		return nil
	}

	technologies := []string(data.Technologies)
	if technologies == nil {
		technologies = []string{}
	}

	return &entity.Experience{
		ID:           data.ID,
		StudentID:    data.StudentID,
		Type:         entity.ExpType(data.Type),
		Title:        data.Title,
		Organisation: data.Organisation,
		Description:  data.Description,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Technologies: technologies,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromExperienceDomain(data *entity.Experience) *model.ExperienceModel {
	if data == nil {
		return nil
	}

	technologies := data.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	return &model.ExperienceModel{
		ID:           data.ID,
		StudentID:    data.StudentID,
		Type:         string(data.Type),
		Title:        data.Title,
		Organisation: data.Organisation,
		Description:  data.Description,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Technologies: datatypes.JSONSlice[string](technologies),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
