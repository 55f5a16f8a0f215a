package impl

import (
	"context"
	"testing"
	"time"

	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type experienceServiceFixtures struct {
	repoFixtures
	service usecase.ExperienceUsecase
}

func createTestExperienceService(t *testing.T) experienceServiceFixtures {
	repos := newRepoFixtures(t)

	svc := NewExperienceService(ExperienceServiceParams{
		TxManager:      repos.txManager,
		ExperienceRepo: repos.experienceRepo,
		Logger:         newDiscardLogger(),
	})

	return experienceServiceFixtures{repoFixtures: repos, service: svc}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func assertEndDateError(t *testing.T, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.CategoryValidation, appErr.Category())
	assert.Equal(t, 422, appErr.HTTPCode())
	assert.Equal(t, []string{"End date must be after the start date"}, appErr.Fields()["endDate"])
}

func TestExperienceService_CreateExperience(t *testing.T) {
	fx := createTestExperienceService(t)
	ctx := context.Background()
	studentID := uuid.New()

	fx.experienceRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *entity.Experience) bool {
			return e.StudentID == studentID && e.Technologies != nil && len(e.Technologies) == 0
		})).
		Return(nil).
		Once()

	exp, err := fx.service.CreateExperience(ctx, &usecase.CreateExperienceInput{
		StudentID:    studentID,
		Type:         entity.ExpTypeInternship,
		Title:        "Backend Intern",
		Organisation: "Acme",
		StartDate:    date(2024, 5, 1),
		EndDate:      ptr(date(2024, 8, 1)),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, exp.Technologies)
}

func TestExperienceService_CreateExperience_EndBeforeStart(t *testing.T) {
	fx := createTestExperienceService(t)

	_, err := fx.service.CreateExperience(context.Background(), &usecase.CreateExperienceInput{
		StudentID: uuid.New(),
		Type:      entity.ExpTypeProject,
		StartDate: date(2024, 5, 1),
		EndDate:   ptr(date(2024, 5, 1)),
	})
	assertEndDateError(t, err)
	fx.experienceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExperienceService_CreateExperience_UnknownType(t *testing.T) {
	fx := createTestExperienceService(t)

	_, err := fx.service.CreateExperience(context.Background(), &usecase.CreateExperienceInput{
		StudentID: uuid.New(),
		Type:      entity.ExpType("HACKATHON"),
		StartDate: date(2024, 5, 1),
	})
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 422, appErr.HTTPCode())
	assert.Equal(t, []string{"Invalid experience type"}, appErr.Fields()["type"])
	fx.experienceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExperienceService_ListExperiences(t *testing.T) {
	fx := createTestExperienceService(t)
	ctx := context.Background()
	studentID := uuid.New()
	exps := []*entity.Experience{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.experienceRepo.EXPECT().ListByStudent(ctx, studentID).Return(exps, nil).Once()

	got, err := fx.service.ListExperiences(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestExperienceService_UpdateExperience(t *testing.T) {
	studentID := uuid.New()
	expID := uuid.New()
	existing := func() *entity.Experience {
		return &entity.Experience{
			ID:           expID,
			StudentID:    studentID,
			Type:         entity.ExpTypeInternship,
			Title:        "Intern",
			Organisation: "Acme",
			StartDate:    date(2024, 5, 1),
			EndDate:      ptr(date(2024, 8, 1)),
			Technologies: []string{"go"},
		}
	}

	t.Run("merges provided fields", func(t *testing.T) {
		fx := createTestExperienceService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.experienceRepo.EXPECT().FindByID(ctx, expID).Return(existing(), nil).Once()
		fx.experienceRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(e *entity.Experience) bool {
				return e.Title == "Senior Intern" && e.Organisation == "Acme" && len(e.Technologies) == 2
			})).
			Return(nil).
			Once()

		exp, err := fx.service.UpdateExperience(ctx, &usecase.UpdateExperienceInput{
			ID:           expID,
			StudentID:    studentID,
			Title:        ptr("Senior Intern"),
			Technologies: []string{"go", "postgres"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Senior Intern", exp.Title)
	})

	t.Run("merged period must stay valid", func(t *testing.T) {
		fx := createTestExperienceService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.experienceRepo.EXPECT().FindByID(ctx, expID).Return(existing(), nil).Once()

		_, err := fx.service.UpdateExperience(ctx, &usecase.UpdateExperienceInput{
			ID:        expID,
			StudentID: studentID,
			StartDate: ptr(date(2025, 1, 1)),
		})
		assertEndDateError(t, err)
	})

	t.Run("clears end date", func(t *testing.T) {
		fx := createTestExperienceService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.experienceRepo.EXPECT().FindByID(ctx, expID).Return(existing(), nil).Once()
		fx.experienceRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(e *entity.Experience) bool { return e.EndDate == nil })).
			Return(nil).
			Once()

		exp, err := fx.service.UpdateExperience(ctx, &usecase.UpdateExperienceInput{
			ID:           expID,
			StudentID:    studentID,
			EndDate:      ptr(date(2025, 1, 1)),
			ClearEndDate: true,
		})
		require.NoError(t, err)
		assert.Nil(t, exp.EndDate)
	})

	t.Run("unknown type", func(t *testing.T) {
		fx := createTestExperienceService(t)
		unknown := entity.ExpType("HACKATHON")

		_, err := fx.service.UpdateExperience(context.Background(), &usecase.UpdateExperienceInput{
			ID:        expID,
			StudentID: studentID,
			Type:      &unknown,
		})
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, []string{"Invalid experience type"}, appErr.Fields()["type"])
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestExperienceService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.experienceRepo.EXPECT().FindByID(ctx, expID).Return(nil, repository.ErrExperienceNotFound).Once()

		_, err := fx.service.UpdateExperience(ctx, &usecase.UpdateExperienceInput{ID: expID, StudentID: studentID})
		assert.ErrorIs(t, err, domainerrors.ErrExperienceNotFound)
	})

	t.Run("owned by someone else", func(t *testing.T) {
		fx := createTestExperienceService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.experienceRepo.EXPECT().FindByID(ctx, expID).Return(existing(), nil).Once()

		_, err := fx.service.UpdateExperience(ctx, &usecase.UpdateExperienceInput{ID: expID, StudentID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrExperienceUpdateOwner)
		fx.experienceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestExperienceService_DeleteExperience(t *testing.T) {
	studentID := uuid.New()
	expID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestExperienceService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.experienceRepo.EXPECT().FindByID(ctx, expID).Return(&entity.Experience{ID: expID, StudentID: studentID}, nil).Once()
		fx.experienceRepo.EXPECT().Delete(ctx, expID).Return(nil).Once()

		assert.NoError(t, fx.service.DeleteExperience(ctx, expID, studentID))
	})

	t.Run("owned by someone else", func(t *testing.T) {
		fx := createTestExperienceService(t)
		ctx := context.Background()

		fx.expectTransaction()
		fx.experienceRepo.EXPECT().FindByID(ctx, expID).Return(&entity.Experience{ID: expID, StudentID: uuid.New()}, nil).Once()

		err := fx.service.DeleteExperience(ctx, expID, studentID)
		assert.ErrorIs(t, err, domainerrors.ErrExperienceDeleteOwner)
	})
}
