// Package service declares the credential and storage collaborators used by the use cases.
package service

// PasswordHasher turns account passwords into one-way digests.
type PasswordHasher interface {
	// Hash returns a salted digest of password, suitable for storing on an Admin or Student.
	Hash(password string) (string, error)

	// Check reports whether password produces digest. Digests this hasher cannot parse never match.
	Check(password, digest string) bool
}
