package impl

import (
	"context"
	"testing"

	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	mockSvc "tnp/internal/mocks/service"
	"tnp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type studentAuthFixtures struct {
	repoFixtures
	service      usecase.StudentAuthUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestStudentAuthService(t *testing.T) studentAuthFixtures {
	repos := newRepoFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewStudentAuthService(StudentAuthServiceParams{
		TxManager:    repos.txManager,
		StudentRepo:  repos.studentRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return studentAuthFixtures{repoFixtures: repos, service: svc, hasher: hasher, tokenService: tokenService}
}

func validStudentSignup() *usecase.SignupStudentInput {
	return &usecase.SignupStudentInput{
		Name:           "Ananya Srivastava",
		Email:          "ananya@example.com",
		RegNo:          "2101234567",
		Password:       "Secret#123",
		Branch:         entity.BranchCSE,
		GraduationYear: 2026,
		CGPA:           8.7,
	}
}

func TestStudentAuthService_Signup_Success(t *testing.T) {
	fx := createTestStudentAuthService(t)
	ctx := context.Background()
	studentID := uuid.New()
	input := validStudentSignup()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil).Once()
	fx.expectTransaction()
	fx.studentRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrStudentNotFound).Once()
	fx.studentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Student) bool {
			return s.RegNo == input.RegNo && s.PasswordHash == "hashed" && s.Branch == entity.BranchCSE
		})).
		Run(func(_ context.Context, s *entity.Student) { s.ID = studentID }).
		Return(nil).
		Once()
	fx.tokenService.EXPECT().
		Issue(mock.MatchedBy(func(i entity.Identity) bool {
			return i.ID == studentID && i.Role == entity.RoleStudent && i.Email == input.Email
		})).
		Return("student-token", nil).
		Once()

	out, err := fx.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "student-token", out.Token)
	assert.Equal(t, studentID, out.Student.ID)
}

func TestStudentAuthService_Signup_Duplicate(t *testing.T) {
	fx := createTestStudentAuthService(t)
	ctx := context.Background()
	input := validStudentSignup()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil).Once()
	fx.expectTransaction()
	fx.studentRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.Student{ID: uuid.New()}, nil).Once()

	_, err := fx.service.Signup(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrStudentAlreadyExists)
	fx.studentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStudentAuthService_Signup_UnknownBranch(t *testing.T) {
	fx := createTestStudentAuthService(t)
	input := validStudentSignup()
	input.Branch = entity.Branch("MBA")

	_, err := fx.service.Signup(context.Background(), input)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"Invalid branch"}, appErr.Fields()["branch"])
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestStudentAuthService_Signup_LookupFailure(t *testing.T) {
	fx := createTestStudentAuthService(t)
	ctx := context.Background()
	input := validStudentSignup()
	dbErr := errors.New("connection refused")

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil).Once()
	fx.expectTransaction()
	fx.studentRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, dbErr).Once()

	_, err := fx.service.Signup(ctx, input)
	assert.ErrorIs(t, err, dbErr)
}

func TestStudentAuthService_Signin(t *testing.T) {
	student := &entity.Student{ID: uuid.New(), Email: "ananya@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestStudentAuthService(t)
		ctx := context.Background()

		fx.studentRepo.EXPECT().FindByEmail(ctx, student.Email).Return(student, nil).Once()
		fx.hasher.EXPECT().Check("Secret#123", "hashed").Return(true).Once()
		fx.tokenService.EXPECT().Issue(mock.Anything).Return("student-token", nil).Once()

		out, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: student.Email, Password: "Secret#123"})
		require.NoError(t, err)
		assert.Equal(t, student, out.Student)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestStudentAuthService(t)
		ctx := context.Background()

		fx.studentRepo.EXPECT().FindByEmail(ctx, "x@example.com").Return(nil, repository.ErrStudentNotFound).Once()

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: "x@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestStudentAuthService(t)
		ctx := context.Background()

		fx.studentRepo.EXPECT().FindByEmail(ctx, student.Email).Return(student, nil).Once()
		fx.hasher.EXPECT().Check("Wrong#123", "hashed").Return(false).Once()

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: student.Email, Password: "Wrong#123"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
	})
}

func TestStudentAuthService_UpdatePassword(t *testing.T) {
	fx := createTestStudentAuthService(t)
	ctx := context.Background()
	studentID := uuid.New()

	fx.expectTransaction()
	fx.studentRepo.EXPECT().FindByID(ctx, studentID).Return(&entity.Student{ID: studentID, PasswordHash: "old-hash"}, nil).Once()
	fx.hasher.EXPECT().Check("Old#12345", "old-hash").Return(true).Once()
	fx.hasher.EXPECT().Hash("New#12345").Return("new-hash", nil).Once()
	fx.studentRepo.EXPECT().UpdatePassword(ctx, studentID, "new-hash").Return(nil).Once()

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		Caller:          &entity.Identity{ID: studentID, Role: entity.RoleStudent},
		CurrentPassword: "Old#12345",
		NewPassword:     "New#12345",
	})
	assert.NoError(t, err)
}
