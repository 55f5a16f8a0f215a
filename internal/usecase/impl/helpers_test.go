package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tnp/config"
	"tnp/internal/domain/repository"
	mockRepo "tnp/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage:    &config.StorageConfig{KeyPrefix: "documents"},
		Pagination: &config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100},
	}
}

// repoFixtures bundles repository mocks and a transaction manager that runs callbacks against them.
type repoFixtures struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	adminRepo      *mockRepo.MockAdminRepository
	studentRepo    *mockRepo.MockStudentRepository
	experienceRepo *mockRepo.MockExperienceRepository
}

func newRepoFixtures(t *testing.T) repoFixtures {
	f := repoFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		adminRepo:      mockRepo.NewMockAdminRepository(t),
		studentRepo:    mockRepo.NewMockStudentRepository(t),
		experienceRepo: mockRepo.NewMockExperienceRepository(t),
	}

	f.factory.EXPECT().AdminRepo().Return(f.adminRepo).Maybe()
	f.factory.EXPECT().StudentRepo().Return(f.studentRepo).Maybe()
	f.factory.EXPECT().ExperienceRepo().Return(f.experienceRepo).Maybe()

	return f
}

// expectTransaction makes the next Execute call run its callback with the mocked factory.
func (f repoFixtures) expectTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Once()
}
