package impl

import (
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/service"
	"tnp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolveAccountID returns the account a password change applies to: always the caller.
// A body id naming someone else is rejected instead of trusted.
func resolveAccountID(input *usecase.UpdatePasswordInput) (uuid.UUID, error) {
	if input.Caller == nil {
		return uuid.Nil, domainerrors.ErrMissingCredentials
	}
	if input.AccountID != nil && *input.AccountID != input.Caller.ID {
		return uuid.Nil, domainerrors.ErrAccountMismatch
	}

	return input.Caller.ID, nil
}

// rehashPassword checks the current password against storedHash and hashes the new one.
func rehashPassword(hasher service.PasswordHasher, input *usecase.UpdatePasswordInput, storedHash string) (string, error) {
	if !hasher.Check(input.CurrentPassword, storedHash) {
		return "", domainerrors.ErrInvalidPassword
	}

	hash, err := hasher.Hash(input.NewPassword)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash new password")
	}

	return hash, nil
}
