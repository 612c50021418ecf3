package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from the given plaintext
// password using the default cost.
//
// bcrypt generates a fresh random salt on every call and embeds it in the
// returned digest, so hashing the same plaintext twice yields two different
// digests. The plaintext is never logged or stored.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the bcrypt digest.
//
// bcrypt recomputes the hash using the salt embedded in digest and compares
// the results in constant time relative to the digest length.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
