package postgres

import (
	"context"

	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the repository.StudentRepository interface.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{
		db: db,
	}
}

func (repo *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by ID")
	}

	return toStudentDomain(&studentM), nil
}

func (repo *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by email")
	}

	return toStudentDomain(&studentM), nil
}

// List returns one page of students, newest first, together with the total count.
func (repo *studentRepository) List(ctx context.Context, offset, limit int) ([]*entity.Student, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count students")
	}

	var studentModels []*model.StudentModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&studentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list students")
	}

	students := make([]*entity.Student, 0, len(studentModels))
	for _, studentM := range studentModels {
		students = append(students, toStudentDomain(studentM))
	}

	return students, total, nil
}

func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStudentAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.BadRequest("Student profile violates a database constraint").WithCause(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	student.ID = studentM.ID
	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

func (repo *studentRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ?", id).
		Update("password", passwordHash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update student password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		RegNo:          data.RegNo,
		PasswordHash:   data.PasswordHash,
		ProfileImg:     data.ProfileImg,
		Branch:         entity.Branch(data.Branch),
		GraduationYear: data.GraduationYear,
		CGPA:           data.CGPA,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		RegNo:          data.RegNo,
		PasswordHash:   data.PasswordHash,
		ProfileImg:     data.ProfileImg,
		Branch:         string(data.Branch),
		GraduationYear: data.GraduationYear,
		CGPA:           data.CGPA,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
