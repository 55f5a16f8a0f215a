package impl

import (
	"context"
	"log/slog"

	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/domain/service"
	"tnp/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// studentAuthService implements the StudentAuthUsecase interface.
type studentAuthService struct {
	txManager    repository.TransactionManager
	studentRepo  repository.StudentRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// StudentAuthServiceParams holds dependencies for StudentAuthService, injected by Fx.
type StudentAuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	StudentRepo  repository.StudentRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewStudentAuthService is the constructor for studentAuthService.
func NewStudentAuthService(params StudentAuthServiceParams) usecase.StudentAuthUsecase {
	return &studentAuthService{
		txManager:    params.TxManager,
		studentRepo:  params.StudentRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *studentAuthService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Signup registers the student and signs a token for the new account.
func (srv *studentAuthService) Signup(ctx context.Context, input *usecase.SignupStudentInput) (*usecase.StudentAuthOutput, error) {
	srv.log(ctx).Info("Starting student signup", slog.String("email", input.Email), slog.String("regNo", input.RegNo))

	student, err := registerStudent(ctx, srv.txManager, srv.hasher, input)
	if err != nil {
		srv.log(ctx).Warn("Student signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(studentIdentity(student))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue student token")
	}

	return &usecase.StudentAuthOutput{Student: student, Token: token}, nil
}

func (srv *studentAuthService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.StudentAuthOutput, error) {
	student, err := srv.studentRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrStudentNotFound) {
		return nil, domainerrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find student by email")
	}

	if !srv.hasher.Check(input.Password, student.PasswordHash) {
		srv.log(ctx).Info("Student signin rejected", slog.Any("studentID", student.ID))

		return nil, domainerrors.ErrInvalidPassword
	}

	token, err := srv.tokenService.Issue(studentIdentity(student))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue student token")
	}

	return &usecase.StudentAuthOutput{Student: student, Token: token}, nil
}

func (srv *studentAuthService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	accountID, err := resolveAccountID(input)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		student, err := studentRepo.FindByID(ctx, accountID)
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domainerrors.ErrStudentNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find student")
		}

		hash, err := rehashPassword(srv.hasher, input, student.PasswordHash)
		if err != nil {
			return err
		}

		return studentRepo.UpdatePassword(ctx, student.ID, hash)
	})
	if err != nil {
		return errors.Wrap(err, "failed to update student password")
	}

	srv.log(ctx).Info("Student password updated", slog.Any("studentID", accountID))

	return nil
}
