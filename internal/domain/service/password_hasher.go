// Package service defines interfaces for infrastructure-backed domain
// services, implemented under internal/infra.
package service

// PasswordHasher abstracts password hashing so the use case layer does not
// depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
