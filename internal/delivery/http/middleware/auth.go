// Package middleware contains the echo middlewares of the HTTP API.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "tnp/internal/delivery/context"
	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies bearer tokens and authorizes the caller by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// RequireStudent admits students and admins.
func (m *AuthMiddleware) RequireStudent() echo.MiddlewareFunc {
	return m.Authenticate(entity.RoleStudent, entity.RoleAdmin)
}

// RequireAdmin admits admins only.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.Authenticate(entity.RoleAdmin)
}

// Authenticate admits requests carrying a valid token whose role is in allowed.
//
// A missing or malformed Authorization header fails with 401. An invalid or
// expired token, and a role outside allowed, fail with 403. The downstream
// handler never runs on failure.
func (m *AuthMiddleware) Authenticate(allowed ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return domainerrors.ErrMissingCredentials
			}

			identity, err := m.tokenSvc.Verify(token)
			if err != nil {
				m.log(c).Debug("Rejected bearer token", slog.Any("error", err))

				return domainerrors.ErrInvalidToken.WithCause(err)
			}

			if !roles.Contains(identity.Role) {
				m.log(c).Debug("Role not permitted",
					slog.String("role", identity.Role.String()),
					slog.Any("allowed", roles.ToStrings()),
				)

				return domainerrors.ErrAccessDenied
			}

			deliverycontext.SetIdentity(c, identity)

			return next(c)
		}
	}
}

func (m *AuthMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}
