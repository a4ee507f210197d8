// Package service defines interfaces for domain capabilities backed by external systems:
// hashing, tokens, image hosting, push notifications, QR codes and event publishing.
package service

// PasswordHasher hashes and verifies the admin password.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
