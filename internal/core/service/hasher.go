package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/taskcase/task-api/internal/core/ports"
)

// BcryptHasher hashes passwords with bcrypt. The produced hash is
// self-contained: salt and cost are encoded in the hash string itself.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. Costs below
// bcrypt.DefaultCost are clamped up so the factor can be tuned but never
// weakened past a secure baseline.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash converts the password to its UTF-8 byte form explicitly before
// hashing. bcrypt rejects inputs over 72 bytes with an error rather than
// truncating silently; that error propagates to the caller.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check compares in constant time via bcrypt. Any failure, a malformed
// stored hash included, is reported as a mismatch.
func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)
