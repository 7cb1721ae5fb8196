package security

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrHashingFailed = errors.New("password hashing failed")

// PasswordHasher provides interface for password operations
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(stored, password string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new password hasher using bcrypt
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(bytes), nil
}

// Compare accepts both bcrypt digests and legacy plaintext records, so a
// data set created before hashing was enabled keeps authenticating.
func (b *bcryptHasher) Compare(stored, password string) error {
	if IsBcryptDigest(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	}
	if stored == password {
		return nil
	}
	return bcrypt.ErrMismatchedHashAndPassword
}

// IsBcryptDigest reports whether s looks like a bcrypt digest.
func IsBcryptDigest(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// PlaintextHasher stores and compares passwords in the clear. It exists
// for behavioral parity with the legacy data set; see the hash_passwords
// setting for the hardened mode.
type PlaintextHasher struct{}

func (PlaintextHasher) Hash(password string) (string, error) { return password, nil }

func (PlaintextHasher) Compare(stored, password string) error {
	if stored != password {
		return errors.New("password mismatch")
	}
	return nil
}
