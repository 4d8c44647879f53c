package ports

// PasswordHasher abstracts password hashing so the services stay independent
// of the concrete algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. Malformed hashes are a
	// mismatch, never an error.
	Check(password, hash string) bool
}
