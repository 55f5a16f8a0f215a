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

// StudentAuthHandlerParams holds dependencies for StudentAuthHandler, injected by Fx.
type StudentAuthHandlerParams struct {
	fx.In

	StudentAuthUC usecase.StudentAuthUsecase
	Logger        *slog.Logger
}

// StudentAuthHandler serves /auth/student.
type StudentAuthHandler struct {
	studentAuthUC usecase.StudentAuthUsecase
	logger        *slog.Logger
}

// NewStudentAuthHandler is the constructor for StudentAuthHandler
func NewStudentAuthHandler(params StudentAuthHandlerParams) *StudentAuthHandler {
	return &StudentAuthHandler{
		studentAuthUC: params.StudentAuthUC,
		logger:        params.Logger,
	}
}

// StudentAuthResponse is returned by student signup.
type StudentAuthResponse struct {
	Student *StudentResponse `json:"student"`
	Token   string           `json:"token"`
}

// Signup registers a student and returns a token.
func (h *StudentAuthHandler) Signup(c echo.Context) error {
	var req SignupStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.studentAuthUC.Signup(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, &StudentAuthResponse{
		Student: toStudentResponse(output.Student),
		Token:   output.Token,
	}, response.Meta{"message": "Student registered successfully"})
}

// Signin exchanges student credentials for a token.
func (h *StudentAuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.studentAuthUC.Signin(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &SigninResponse{
		Token: output.Token,
		User:  toStudentResponse(output.Student),
	}, response.Meta{"message": "Signed in successfully"})
}

// UpdatePassword changes the authenticated student's password.
func (h *StudentAuthHandler) UpdatePassword(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.studentAuthUC.UpdatePassword(c.Request().Context(), req.toInput(caller)); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, struct{}{}, response.Meta{"message": "Password updated successfully"})
}
