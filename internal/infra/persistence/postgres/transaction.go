// Package postgres implements the placement repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"tnp/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager backed by GORM transactions.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute runs fn inside one transaction. gorm rolls back when fn returns an
// error or panics; the panic is propagated after the rollback.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepos{tx: tx})

		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return errors.Wrap(err, "transaction failed")
	}
}

// txRepos binds every repository to the same *gorm.DB transaction handle.
type txRepos struct {
	tx *gorm.DB
}

func (r txRepos) AdminRepo() repository.AdminRepository {
	return NewAdminRepository(r.tx)
}

func (r txRepos) StudentRepo() repository.StudentRepository {
	return NewStudentRepository(r.tx)
}

func (r txRepos) ExperienceRepo() repository.ExperienceRepository {
	return NewExperienceRepository(r.tx)
}
