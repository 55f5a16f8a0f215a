package repository

import "context"

// TransactionManager runs multi-step writes atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share the caller's transaction.
type RepositoryFactory interface {
	AdminRepo() AdminRepository
	StudentRepo() StudentRepository
	ExperienceRepo() ExperienceRepository
}
