package impl

import (
	"context"
	"log/slog"
	"math"

	"tnp/config"
	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/domain/service"
	"tnp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// studentService implements the StudentUsecase interface.
type studentService struct {
	txManager    repository.TransactionManager
	studentRepo  repository.StudentRepository
	hasher       service.PasswordHasher
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// StudentServiceParams holds dependencies for StudentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StudentRepo repository.StudentRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	defaultLimit, maxLimit := 20, 100
	if params.Config != nil && params.Config.Pagination != nil {
		if params.Config.Pagination.DefaultLimit > 0 {
			defaultLimit = params.Config.Pagination.DefaultLimit
		}
		if params.Config.Pagination.MaxLimit > 0 {
			maxLimit = params.Config.Pagination.MaxLimit
		}
	}

	return &studentService{
		txManager:    params.TxManager,
		studentRepo:  params.StudentRepo,
		hasher:       params.Hasher,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// CreateStudent registers a student without issuing a token.
func (srv *studentService) CreateStudent(ctx context.Context, input *usecase.SignupStudentInput) (*entity.Student, error) {
	student, err := registerStudent(ctx, srv.txManager, srv.hasher, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Student created", slog.Any("studentID", student.ID))

	return student, nil
}

// ListStudents returns one page of students. Page and limit are clamped to sane values.
func (srv *studentService) ListStudents(ctx context.Context, input *usecase.ListStudentsInput) (*usecase.ListStudentsOutput, error) {
	page := max(input.Page, 1)
	limit := input.Limit
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	limit = min(limit, srv.maxLimit)
	if limit > 0 && page-1 > math.MaxInt/limit {
		return nil, domainerrors.ErrPageOutOfRange
	}

	students, total, err := srv.studentRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	return &usecase.ListStudentsOutput{
		Students: students,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func (srv *studentService) GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	student, err := srv.studentRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrStudentNotFound) {
		return nil, domainerrors.ErrStudentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find student")
	}

	return student, nil
}
