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

type adminAuthFixtures struct {
	repoFixtures
	service      usecase.AdminAuthUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAdminAuthService(t *testing.T) adminAuthFixtures {
	repos := newRepoFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAdminAuthService(AdminAuthServiceParams{
		TxManager:    repos.txManager,
		AdminRepo:    repos.adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return adminAuthFixtures{
		repoFixtures: repos,
		service:      svc,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAdminAuthService_Signup_Success(t *testing.T) {
	fx := createTestAdminAuthService(t)
	ctx := context.Background()
	adminID := uuid.New()

	input := &usecase.SignupAdminInput{Name: "Placement Officer", Email: "tpo@example.com", Password: "Secret#123"}

	fx.hasher.EXPECT().Hash("Secret#123").Return("hashed", nil).Once()
	fx.expectTransaction()
	fx.adminRepo.EXPECT().FindByEmail(ctx, "tpo@example.com").Return(nil, repository.ErrAdminNotFound).Once()
	fx.adminRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Admin) bool {
			return a.Email == "tpo@example.com" && a.PasswordHash == "hashed"
		})).
		Run(func(_ context.Context, a *entity.Admin) { a.ID = adminID }).
		Return(nil).
		Once()
	fx.tokenService.EXPECT().
		Issue(entity.Identity{ID: adminID, Name: "Placement Officer", Email: "tpo@example.com", Role: entity.RoleAdmin}).
		Return("signed-token", nil).
		Once()

	out, err := fx.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, adminID, out.Admin.ID)
}

func TestAdminAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAdminAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
	fx.expectTransaction()
	fx.adminRepo.EXPECT().FindByEmail(ctx, "tpo@example.com").Return(&entity.Admin{ID: uuid.New()}, nil).Once()

	out, err := fx.service.Signup(ctx, &usecase.SignupAdminInput{Email: "tpo@example.com", Password: "Secret#123"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrAdminAlreadyExists)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	fx.adminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAdminAuthService_Signin(t *testing.T) {
	admin := &entity.Admin{ID: uuid.New(), Name: "Placement Officer", Email: "tpo@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAdminAuthService(t)
		ctx := context.Background()

		fx.adminRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil).Once()
		fx.hasher.EXPECT().Check("Secret#123", "hashed").Return(true).Once()
		fx.tokenService.EXPECT().Issue(mock.MatchedBy(func(i entity.Identity) bool {
			return i.ID == admin.ID && i.Role == entity.RoleAdmin
		})).Return("signed-token", nil).Once()

		out, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: admin.Email, Password: "Secret#123"})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAdminAuthService(t)
		ctx := context.Background()

		fx.adminRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrAdminNotFound).Once()

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: "nobody@example.com", Password: "Secret#123"})
		assert.ErrorIs(t, err, domainerrors.ErrAdminNotFound)
	})

	t.Run("wrong password issues no token", func(t *testing.T) {
		fx := createTestAdminAuthService(t)
		ctx := context.Background()

		fx.adminRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil).Once()
		fx.hasher.EXPECT().Check("Wrong#1234", "hashed").Return(false).Once()

		out, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: admin.Email, Password: "Wrong#1234"})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
		fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestAdminAuthService_UpdatePassword(t *testing.T) {
	adminID := uuid.New()
	caller := &entity.Identity{ID: adminID, Role: entity.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		fx := createTestAdminAuthService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.Admin{ID: adminID, PasswordHash: "old-hash"}, nil).Once()
		fx.hasher.EXPECT().Check("Old#12345", "old-hash").Return(true).Once()
		fx.hasher.EXPECT().Hash("New#12345").Return("new-hash", nil).Once()
		fx.adminRepo.EXPECT().UpdatePassword(ctx, adminID, "new-hash").Return(nil).Once()

		err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
			Caller:          caller,
			AccountID:       &adminID,
			CurrentPassword: "Old#12345",
			NewPassword:     "New#12345",
		})
		assert.NoError(t, err)
	})

	t.Run("body id of another account", func(t *testing.T) {
		fx := createTestAdminAuthService(t)
		other := uuid.New()

		err := fx.service.UpdatePassword(context.Background(), &usecase.UpdatePasswordInput{
			Caller:          caller,
			AccountID:       &other,
			CurrentPassword: "Old#12345",
			NewPassword:     "New#12345",
		})
		assert.ErrorIs(t, err, domainerrors.ErrAccountMismatch)
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestAdminAuthService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.Admin{ID: adminID, PasswordHash: "old-hash"}, nil).Once()
		fx.hasher.EXPECT().Check("Nope#1234", "old-hash").Return(false).Once()

		err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
			Caller:          caller,
			CurrentPassword: "Nope#1234",
			NewPassword:     "New#12345",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
		fx.adminRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("account vanished", func(t *testing.T) {
		fx := createTestAdminAuthService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(nil, repository.ErrAdminNotFound).Once()

		err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Caller: caller, CurrentPassword: "a", NewPassword: "b"})
		assert.ErrorIs(t, err, domainerrors.ErrAdminNotFound)
	})

	t.Run("missing caller", func(t *testing.T) {
		fx := createTestAdminAuthService(t)

		err := fx.service.UpdatePassword(context.Background(), &usecase.UpdatePasswordInput{})
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	})
}
