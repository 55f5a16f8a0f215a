package impl

import (
	"context"

	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/domain/service"
	"tnp/internal/usecase"

	"github.com/pkg/errors"
)

// registerStudent hashes the password and inserts the student unless the email is taken.
func registerStudent(
	ctx context.Context,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	input *usecase.SignupStudentInput,
) (*entity.Student, error) {
	if !input.Branch.IsValid() {
		return nil, domainerrors.CustomField("", "branch", "Invalid branch")
	}

	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	student := &entity.Student{
		Name:           input.Name,
		Email:          input.Email,
		RegNo:          input.RegNo,
		PasswordHash:   hash,
		ProfileImg:     input.ProfileImg,
		Branch:         input.Branch,
		GraduationYear: input.GraduationYear,
		CGPA:           input.CGPA,
	}

	err = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		_, err := studentRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrStudentAlreadyExists
		}
		if !errors.Is(err, repository.ErrStudentNotFound) {
			return errors.Wrap(err, "failed to check existing student")
		}

		return studentRepo.Create(ctx, student)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute student registration transaction")
	}

	return student, nil
}

func studentIdentity(student *entity.Student) entity.Identity {
	return entity.Identity{
		ID:    student.ID,
		Name:  student.Name,
		Email: student.Email,
		Role:  entity.RoleStudent,
	}
}
