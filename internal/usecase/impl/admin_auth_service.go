// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/domain/service"
	"tnp/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminAuthService implements the AdminAuthUsecase interface.
type adminAuthService struct {
	txManager    repository.TransactionManager
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminAuthServiceParams holds dependencies for AdminAuthService, injected by Fx.
type AdminAuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAdminAuthService is the constructor for adminAuthService.
func NewAdminAuthService(params AdminAuthServiceParams) usecase.AdminAuthUsecase {
	return &adminAuthService{
		txManager:    params.TxManager,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminAuthService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Signup creates an admin account and signs a token for it.
func (srv *adminAuthService) Signup(ctx context.Context, input *usecase.SignupAdminInput) (*usecase.AdminAuthOutput, error) {
	srv.log(ctx).Info("Starting admin signup", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	admin := &entity.Admin{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		_, err := adminRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrAdminAlreadyExists
		}
		if !errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(err, "failed to check existing admin")
		}

		return adminRepo.Create(ctx, admin)
	})
	if err != nil {
		srv.log(ctx).Warn("Admin signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute admin signup transaction")
	}

	token, err := srv.tokenService.Issue(adminIdentity(admin))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin token")
	}

	srv.log(ctx).Debug("Admin signup completed", slog.Any("adminID", admin.ID))

	return &usecase.AdminAuthOutput{Admin: admin, Token: token}, nil
}

// Signin verifies the admin's credentials and signs a fresh token.
func (srv *adminAuthService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.AdminAuthOutput, error) {
	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAdminNotFound) {
		return nil, domainerrors.ErrAdminNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Info("Admin signin rejected", slog.Any("adminID", admin.ID))

		return nil, domainerrors.ErrInvalidPassword
	}

	token, err := srv.tokenService.Issue(adminIdentity(admin))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin token")
	}

	return &usecase.AdminAuthOutput{Admin: admin, Token: token}, nil
}

// UpdatePassword replaces the caller's password after checking the current one.
func (srv *adminAuthService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	accountID, err := resolveAccountID(input)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		admin, err := adminRepo.FindByID(ctx, accountID)
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find admin")
		}

		hash, err := rehashPassword(srv.hasher, input, admin.PasswordHash)
		if err != nil {
			return err
		}

		return adminRepo.UpdatePassword(ctx, admin.ID, hash)
	})
	if err != nil {
		return errors.Wrap(err, "failed to update admin password")
	}

	srv.log(ctx).Info("Admin password updated", slog.Any("adminID", accountID))

	return nil
}

func adminIdentity(admin *entity.Admin) entity.Identity {
	return entity.Identity{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Role:  entity.RoleAdmin,
	}
}
