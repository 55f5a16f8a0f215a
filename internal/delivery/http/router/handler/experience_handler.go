package handler

import (
	"log/slog"
	"net/http"

	"tnp/internal/delivery/http/response"
	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ExperienceHandlerParams holds dependencies for ExperienceHandler, injected by Fx.
type ExperienceHandlerParams struct {
	fx.In

	ExperienceUC usecase.ExperienceUsecase
	Logger       *slog.Logger
}

// ExperienceHandler serves /experience.
type ExperienceHandler struct {
	experienceUC usecase.ExperienceUsecase
	logger       *slog.Logger
}

// NewExperienceHandler is the constructor for ExperienceHandler
func NewExperienceHandler(params ExperienceHandlerParams) *ExperienceHandler {
	return &ExperienceHandler{
		experienceUC: params.ExperienceUC,
		logger:       params.Logger,
	}
}

// CreateExperienceRequest is the body of POST /experience.
type CreateExperienceRequest struct {
	Type         string   `json:"type" validate:"required,oneof=INTERNSHIP FULL_TIME PART_TIME FREELANCE PROJECT RESEARCH VOLUNTEER"`
	Title        string   `json:"title" validate:"required,min=3,max=200"`
	Organisation string   `json:"organisation" validate:"required,min=2,max=200"`
	Description  *string  `json:"description" validate:"omitempty,max=5000"`
	StartDate    Date     `json:"startDate" validate:"required"`
	EndDate      *Date    `json:"endDate"`
	Technologies []string `json:"technologies" validate:"omitempty,dive,required,max=100"`
}

// UpdateExperienceRequest is the body of PUT /experience/:id. Absent fields are left unchanged;
// an explicit null endDate clears it.
type UpdateExperienceRequest struct {
	Type         *string  `json:"type" validate:"omitempty,oneof=INTERNSHIP FULL_TIME PART_TIME FREELANCE PROJECT RESEARCH VOLUNTEER"`
	Title        *string  `json:"title" validate:"omitempty,min=3,max=200"`
	Organisation *string  `json:"organisation" validate:"omitempty,min=2,max=200"`
	Description  *string  `json:"description" validate:"omitempty,max=5000"`
	StartDate    *Date        `json:"startDate"`
	EndDate      OptionalDate `json:"endDate"`
	Technologies []string     `json:"technologies" validate:"omitempty,dive,required,max=100"`
}

// CreateExperience adds an experience record for the caller.
func (h *ExperienceHandler) CreateExperience(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req CreateExperienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	exp, err := h.experienceUC.CreateExperience(c.Request().Context(), &usecase.CreateExperienceInput{
		StudentID:    caller.ID,
		Type:         entity.ExpType(req.Type),
		Title:        req.Title,
		Organisation: req.Organisation,
		Description:  req.Description,
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.timePtr(),
		Technologies: req.Technologies,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toExperienceResponse(exp), response.Meta{"message": "Experience added successfully"})
}

// ListExperiences returns the caller's experiences, most recent start date first.
func (h *ExperienceHandler) ListExperiences(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	exps, err := h.experienceUC.ListExperiences(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*ExperienceResponse, 0, len(exps))
	for _, exp := range exps {
		out = append(out, toExperienceResponse(exp))
	}

	return response.JSON(c, http.StatusOK, out, response.Meta{"count": len(out)})
}

// UpdateExperience applies a partial update to one of the caller's experiences.
func (h *ExperienceHandler) UpdateExperience(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id", domainerrors.ErrExperienceIDRequired)
	if err != nil {
		return err
	}

	var req UpdateExperienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateExperienceInput{
		ID:           id,
		StudentID:    caller.ID,
		Title:        req.Title,
		Organisation: req.Organisation,
		Description:  req.Description,
		StartDate:    req.StartDate.timePtr(),
		EndDate:      req.EndDate.Value.timePtr(),
		ClearEndDate: req.EndDate.cleared(),
		Technologies: req.Technologies,
	}
	if req.Type != nil {
		expType := entity.ExpType(*req.Type)
		input.Type = &expType
	}

	exp, err := h.experienceUC.UpdateExperience(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toExperienceResponse(exp), response.Meta{"message": "Experience updated successfully"})
}

// DeleteExperience removes one of the caller's experiences.
func (h *ExperienceHandler) DeleteExperience(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id", domainerrors.ErrExperienceIDRequired)
	if err != nil {
		return err
	}

	if err := h.experienceUC.DeleteExperience(c.Request().Context(), id, caller.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, struct{}{}, response.Meta{"message": "Experience deleted successfully"})
}
