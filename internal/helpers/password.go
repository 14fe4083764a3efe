package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptHash indicates a stored hash that bcrypt cannot parse. A plain
// mismatch is not an error.
var ErrCorruptHash = errors.New("corrupt password hash")

// HashPassword generates a salted bcrypt hash of the given password. Two
// calls with the same input produce different hashes.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A wrong
// password returns (false, nil); a malformed hash returns ErrCorruptHash.
func CheckPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrCorruptHash
}
