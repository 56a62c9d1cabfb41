package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of password at the given cost.
// bcrypt draws a fresh random salt on every call, so hashing the same
// password twice yields different digests.
//
// Returns an error if the cost is out of range or the password exceeds
// bcrypt's 72 byte limit.
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether password matches the bcrypt digest.
// A malformed digest never matches.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
