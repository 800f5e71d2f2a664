// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, self-describing digest from a plaintext password.
	// Two calls with the same input return different digests.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest in constant time.
	// A plain mismatch is (false, nil); an error means the comparison itself
	// could not run, e.g. the digest is malformed.
	Check(password, hash string) (bool, error)
}
