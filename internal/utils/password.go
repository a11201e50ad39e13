package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every stored
// password. Cost 10 keeps hashing slow enough to resist offline brute
// force while staying within interactive login latency.
const passwordHashCost = 10

// HashPassword derives a salted bcrypt digest from the given plaintext
// password. The digest embeds its own salt and cost, so it is stored as an
// opaque string and needs no companion columns.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt digest.
// bcrypt's comparison is constant-time for the digest in question, so the
// result carries no timing signal about how close the guess was.
func VerifyPassword(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
