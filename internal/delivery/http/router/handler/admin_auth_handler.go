package handler

import (
	"log/slog"
	"net/http"

	"tnp/internal/delivery/http/response"
	"tnp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminAuthHandlerParams holds dependencies for AdminAuthHandler, injected by Fx.
type AdminAuthHandlerParams struct {
	fx.In

	AdminAuthUC usecase.AdminAuthUsecase
	Logger      *slog.Logger
}

// AdminAuthHandler serves /auth/admin.
type AdminAuthHandler struct {
	adminAuthUC usecase.AdminAuthUsecase
	logger      *slog.Logger
}

// NewAdminAuthHandler is the constructor for AdminAuthHandler
func NewAdminAuthHandler(params AdminAuthHandlerParams) *AdminAuthHandler {
	return &AdminAuthHandler{
		adminAuthUC: params.AdminAuthUC,
		logger:      params.Logger,
	}
}

// AdminAuthResponse is returned by admin signup.
type AdminAuthResponse struct {
	Admin *AdminResponse `json:"admin"`
	Token string         `json:"token"`
}

// SigninResponse is returned by both sign-in endpoints.
type SigninResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Signup registers an admin and returns a token.
func (h *AdminAuthHandler) Signup(c echo.Context) error {
	var req SignupAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.adminAuthUC.Signup(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, &AdminAuthResponse{
		Admin: toAdminResponse(output.Admin),
		Token: output.Token,
	}, response.Meta{"message": "Admin registered successfully"})
}

// Signin exchanges admin credentials for a token.
func (h *AdminAuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.adminAuthUC.Signin(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &SigninResponse{
		Token: output.Token,
		User:  toAdminResponse(output.Admin),
	}, response.Meta{"message": "Signed in successfully"})
}

// UpdatePassword changes the authenticated admin's password.
func (h *AdminAuthHandler) UpdatePassword(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.adminAuthUC.UpdatePassword(c.Request().Context(), req.toInput(caller)); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, struct{}{}, response.Meta{"message": "Password updated successfully"})
}
