// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password of any length.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash produced by Hash.
	// A mismatch is (false, nil); an error means the hash itself could not be used.
	Check(password, hash string) (bool, error)
}
