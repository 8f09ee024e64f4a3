package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is substituted when an admin creates an account without
// supplying a password.
const DefaultPassword = "changeme123"

// HashPassword produces the stored form of a credential (bcrypt, fixed cost).
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a login attempt against a stored credential. Values
// with a bcrypt prefix get a constant-time hash comparison; anything else is a
// legacy pre-migration plaintext and is compared by direct equality. Legacy
// values are never upgraded here.
func VerifyPassword(plain, stored string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return stored == plain
}
