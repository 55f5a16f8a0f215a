package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tnp/internal/delivery/context"
	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	mockSvc "tnp/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	studentID := uuid.New()
	adminID := uuid.New()
	student := &entity.Identity{ID: studentID, Name: "Student", Email: "s@example.com", Role: entity.RoleStudent}
	admin := &entity.Identity{ID: adminID, Name: "Admin", Email: "a@example.com", Role: entity.RoleAdmin}

	tests := []struct {
		name          string
		adminOnly     bool
		authorization string
		setupMock     func(m *mockSvc.MockTokenService)
		wantErr       error
		wantIdentity  *entity.Identity
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrMissingCredentials,
		},
		{
			name:          "wrong scheme",
			authorization: "Basic dXNlcjpwYXNz",
			wantErr:       domainerrors.ErrMissingCredentials,
		},
		{
			name:          "empty bearer token",
			authorization: "Bearer   ",
			wantErr:       domainerrors.ErrMissingCredentials,
		},
		{
			name:          "expired token",
			authorization: "Bearer expired",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Verify("expired").Return(nil, errors.Wrap(jwt.ErrTokenExpired, "parse token"))
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:          "student on admin route",
			adminOnly:     true,
			authorization: "Bearer student-token",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Verify("student-token").Return(student, nil)
			},
			wantErr: domainerrors.ErrAccessDenied,
		},
		{
			name:          "student on student route",
			authorization: "Bearer student-token",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Verify("student-token").Return(student, nil)
			},
			wantIdentity: student,
		},
		{
			name:          "admin on student route",
			authorization: "Bearer admin-token",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Verify("admin-token").Return(admin, nil)
			},
			wantIdentity: admin,
		},
		{
			name:          "admin on admin route",
			adminOnly:     true,
			authorization: "Bearer admin-token",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Verify("admin-token").Return(admin, nil)
			},
			wantIdentity: admin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			mw := NewAuthMiddleware(tokenSvc, newDiscardLogger())

			guard := mw.RequireStudent()
			if tt.adminOnly {
				guard = mw.RequireAdmin()
			}

			e := echo.New()
			c := e.NewContext(newRequest(http.MethodGet, "/", tt.authorization), httptest.NewRecorder())

			var called bool
			var seen *entity.Identity
			err := guard(func(c echo.Context) error {
				called = true
				seen, _ = deliverycontext.IdentityFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})(c)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called, "downstream handler must not run")

				return
			}

			require.NoError(t, err)
			assert.True(t, called)
			require.NotNil(t, seen)
			assert.Equal(t, tt.wantIdentity.ID, seen.ID)
			assert.Equal(t, tt.wantIdentity.Role, seen.Role)

			fromEcho, ok := deliverycontext.GetIdentity(c)
			require.True(t, ok)
			assert.Same(t, seen, fromEcho)
		})
	}
}

func TestAuthMiddleware_StatusCodes(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("bad").Return(nil, jwt.ErrTokenSignatureInvalid)
	mw := NewAuthMiddleware(tokenSvc, newDiscardLogger())

	e := newTestEcho(newDiscardLogger())
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, mw.RequireStudent())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newRequest(http.MethodGet, "/protected", ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, newRequest(http.MethodGet, "/protected", "Bearer bad"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
