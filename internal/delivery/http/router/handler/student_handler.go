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

// StudentHandlerParams holds dependencies for StudentHandler, injected by Fx.
type StudentHandlerParams struct {
	fx.In

	StudentUC usecase.StudentUsecase
	Logger    *slog.Logger
}

// StudentHandler serves /students.
type StudentHandler struct {
	studentUC usecase.StudentUsecase
	logger    *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler
func NewStudentHandler(params StudentHandlerParams) *StudentHandler {
	return &StudentHandler{
		studentUC: params.StudentUC,
		logger:    params.Logger,
	}
}

// CreateStudent registers a student without issuing a token.
func (h *StudentHandler) CreateStudent(c echo.Context) error {
	var req SignupStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.studentUC.CreateStudent(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toStudentResponse(student), response.Meta{"message": "Student created successfully"})
}

// ListStudents returns one page of students, newest first.
func (h *StudentHandler) ListStudents(c echo.Context) error {
	page, err := positiveQueryInt(c, "page", 1)
	if err != nil {
		return err
	}
	// Zero lets the use case apply its configured default.
	limit, err := positiveQueryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	output, err := h.studentUC.ListStudents(c.Request().Context(), &usecase.ListStudentsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	env := response.Paginated(toStudentResponses(output.Students), output.Total, output.Page, output.Limit, c.Request().URL.Path)

	return response.Write(c, env)
}

// GetMe returns the authenticated student's profile.
func (h *StudentHandler) GetMe(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	student, err := h.studentUC.GetStudent(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toStudentResponse(student), nil)
}
