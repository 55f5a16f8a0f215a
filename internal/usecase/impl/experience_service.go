package impl

import (
	"context"
	"log/slog"

	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	endDateMessage = "End date must be after the start date"
	expTypeMessage = "Invalid experience type"
)

// experienceService implements the ExperienceUsecase interface.
type experienceService struct {
	txManager      repository.TransactionManager
	experienceRepo repository.ExperienceRepository
	logger         *slog.Logger
}

// ExperienceServiceParams holds dependencies for ExperienceService, injected by Fx.
type ExperienceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ExperienceRepo repository.ExperienceRepository
	Logger         *slog.Logger
}

// NewExperienceService is the constructor for experienceService.
func NewExperienceService(params ExperienceServiceParams) usecase.ExperienceUsecase {
	return &experienceService{
		txManager:      params.TxManager,
		experienceRepo: params.ExperienceRepo,
		logger:         params.Logger,
	}
}

func (srv *experienceService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *experienceService) CreateExperience(ctx context.Context, input *usecase.CreateExperienceInput) (*entity.Experience, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.CustomField("", "type", expTypeMessage)
	}

	technologies := input.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	exp := &entity.Experience{
		StudentID:    input.StudentID,
		Type:         input.Type,
		Title:        input.Title,
		Organisation: input.Organisation,
		Description:  input.Description,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Technologies: technologies,
	}
	if !exp.HasValidPeriod() {
		return nil, invalidPeriodError()
	}

	if err := srv.experienceRepo.Create(ctx, exp); err != nil {
		return nil, errors.Wrap(err, "failed to create experience")
	}

	srv.log(ctx).Info("Experience created", slog.Any("studentID", exp.StudentID), slog.Any("experienceID", exp.ID))

	return exp, nil
}

// ListExperiences returns the student's experiences, most recent first.
func (srv *experienceService) ListExperiences(ctx context.Context, studentID uuid.UUID) ([]*entity.Experience, error) {
	exps, err := srv.experienceRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list experiences")
	}

	return exps, nil
}

// UpdateExperience merges the provided fields into the caller's experience.
func (srv *experienceService) UpdateExperience(ctx context.Context, input *usecase.UpdateExperienceInput) (*entity.Experience, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerrors.CustomField("", "type", expTypeMessage)
	}

	var updated *entity.Experience

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		expRepo := repoFactory.ExperienceRepo()

		exp, err := findOwnedExperience(ctx, expRepo, input.ID, input.StudentID, domainerrors.ErrExperienceUpdateOwner)
		if err != nil {
			return err
		}

		applyExperienceUpdate(exp, input)
		if !exp.HasValidPeriod() {
			return invalidPeriodError()
		}

		if err := expRepo.Update(ctx, exp); err != nil {
			if errors.Is(err, repository.ErrExperienceNotFound) {
				return domainerrors.ErrExperienceNotFound
			}

			return err
		}
		updated = exp

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update experience")
	}

	srv.log(ctx).Info("Experience updated", slog.Any("experienceID", updated.ID))

	return updated, nil
}

func (srv *experienceService) DeleteExperience(ctx context.Context, id, studentID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		expRepo := repoFactory.ExperienceRepo()

		if _, err := findOwnedExperience(ctx, expRepo, id, studentID, domainerrors.ErrExperienceDeleteOwner); err != nil {
			return err
		}

		err := expRepo.Delete(ctx, id)
		if errors.Is(err, repository.ErrExperienceNotFound) {
			return domainerrors.ErrExperienceNotFound
		}

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete experience")
	}

	srv.log(ctx).Info("Experience deleted", slog.Any("experienceID", id))

	return nil
}

func findOwnedExperience(
	ctx context.Context,
	expRepo repository.ExperienceRepository,
	id, studentID uuid.UUID,
	ownerErr error,
) (*entity.Experience, error) {
	exp, err := expRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrExperienceNotFound) {
		return nil, domainerrors.ErrExperienceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find experience")
	}

	if exp.StudentID != studentID {
		return nil, ownerErr
	}

	return exp, nil
}

func applyExperienceUpdate(exp *entity.Experience, input *usecase.UpdateExperienceInput) {
	if input.Type != nil {
		exp.Type = *input.Type
	}
	if input.Title != nil {
		exp.Title = *input.Title
	}
	if input.Organisation != nil {
		exp.Organisation = *input.Organisation
	}
	if input.Description != nil {
		exp.Description = input.Description
	}
	if input.StartDate != nil {
		exp.StartDate = *input.StartDate
	}
	switch {
	case input.ClearEndDate:
		exp.EndDate = nil
	case input.EndDate != nil:
		exp.EndDate = input.EndDate
	}
	if input.Technologies != nil {
		exp.Technologies = input.Technologies
	}
}

func invalidPeriodError() error {
	return domainerrors.Validation("", []domainerrors.ValidationItem{
		{Path: "endDate", Msg: endDateMessage},
	})
}
