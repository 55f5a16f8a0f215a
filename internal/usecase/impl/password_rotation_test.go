package impl

import (
	"context"
	"testing"

	"tnp/config"
	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/infra/auth"
	mockSvc "tnp/internal/mocks/service"
	"tnp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	oldPassword = "Secret#123"
	newPassword = "Rotated#456"
)

func TestAdminAuthService_PasswordRotation(t *testing.T) {
	ctx := context.Background()
	repos := newRepoFixtures(t)
	hasher := auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})
	tokens := mockSvc.NewMockTokenService(t)

	svc := NewAdminAuthService(AdminAuthServiceParams{
		TxManager:    repos.txManager,
		AdminRepo:    repos.adminRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	stored, err := hasher.Hash(oldPassword)
	require.NoError(t, err)
	adminID := uuid.New()
	current := func() *entity.Admin {
		return &entity.Admin{ID: adminID, Email: "tpo@example.com", PasswordHash: stored}
	}

	repos.adminRepo.EXPECT().FindByID(mock.Anything, adminID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Admin, error) { return current(), nil })
	repos.adminRepo.EXPECT().FindByEmail(mock.Anything, "tpo@example.com").
		RunAndReturn(func(context.Context, string) (*entity.Admin, error) { return current(), nil })
	repos.adminRepo.EXPECT().UpdatePassword(mock.Anything, adminID, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			stored = hash

			return nil
		}).
		Once()
	tokens.EXPECT().Issue(mock.Anything).Return("admin-token", nil).Once()
	repos.expectTransaction()

	err = svc.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		Caller:          &entity.Identity{ID: adminID, Role: entity.RoleAdmin},
		CurrentPassword: oldPassword,
		NewPassword:     newPassword,
	})
	require.NoError(t, err)

	_, err = svc.Signin(ctx, &usecase.SigninInput{Email: "tpo@example.com", Password: oldPassword})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)

	out, err := svc.Signin(ctx, &usecase.SigninInput{Email: "tpo@example.com", Password: newPassword})
	require.NoError(t, err)
	assert.Equal(t, "admin-token", out.Token)
}

func TestStudentAuthService_PasswordRotation(t *testing.T) {
	ctx := context.Background()
	repos := newRepoFixtures(t)
	hasher := auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})
	tokens := mockSvc.NewMockTokenService(t)

	svc := NewStudentAuthService(StudentAuthServiceParams{
		TxManager:    repos.txManager,
		StudentRepo:  repos.studentRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	stored, err := hasher.Hash(oldPassword)
	require.NoError(t, err)
	studentID := uuid.New()
	current := func() *entity.Student {
		return &entity.Student{ID: studentID, Email: "ananya@example.com", PasswordHash: stored}
	}

	repos.studentRepo.EXPECT().FindByID(mock.Anything, studentID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Student, error) { return current(), nil })
	repos.studentRepo.EXPECT().FindByEmail(mock.Anything, "ananya@example.com").
		RunAndReturn(func(context.Context, string) (*entity.Student, error) { return current(), nil })
	repos.studentRepo.EXPECT().UpdatePassword(mock.Anything, studentID, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			stored = hash

			return nil
		}).
		Once()
	tokens.EXPECT().Issue(mock.Anything).Return("student-token", nil).Once()
	repos.expectTransaction()

	err = svc.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		Caller:          &entity.Identity{ID: studentID, Role: entity.RoleStudent},
		CurrentPassword: oldPassword,
		NewPassword:     newPassword,
	})
	require.NoError(t, err)

	_, err = svc.Signin(ctx, &usecase.SigninInput{Email: "ananya@example.com", Password: oldPassword})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)

	out, err := svc.Signin(ctx, &usecase.SigninInput{Email: "ananya@example.com", Password: newPassword})
	require.NoError(t, err)
	assert.Equal(t, "student-token", out.Token)
}
