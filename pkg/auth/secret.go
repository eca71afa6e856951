package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const secretHashCost = 12

// HashSecret hashes an API client secret using bcrypt
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), secretHashCost)
	return string(bytes), err
}

// CheckSecretHash checks if a secret matches a hash
func CheckSecretHash(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}

// ValidateSecretStrength requires at least 16 characters mixing letters
// and digits. Generated secrets always pass.
func ValidateSecretStrength(secret string) error {
	var hasLetter, hasDigit bool
	for _, ch := range secret {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	var failures []string
	if len(secret) < 16 {
		failures = append(failures, "at least 16 characters")
	}
	if !hasLetter {
		failures = append(failures, "at least 1 letter")
	}
	if !hasDigit {
		failures = append(failures, "at least 1 digit")
	}

	if len(failures) > 0 {
		return fmt.Errorf("secret must contain %s", strings.Join(failures, ", "))
	}
	return nil
}

// GenerateSecret creates a cryptographically secure random secret
func GenerateSecret() string {
	for {
		bytes := make([]byte, 16) // 128 bits
		rand.Read(bytes)
		s := hex.EncodeToString(bytes)
		// hex of random bytes almost always mixes letters and digits
		if ValidateSecretStrength(s) == nil {
			return s
		}
	}
}
