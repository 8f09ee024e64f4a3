package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"go-jobboard/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret123")))
}

func TestVerifyPassword(t *testing.T) {
	hashed, _ := auth.HashPassword("secret123")

	t.Run("Bcrypt match", func(t *testing.T) {
		assert.True(t, auth.VerifyPassword("secret123", hashed))
	})

	t.Run("Bcrypt mismatch", func(t *testing.T) {
		assert.False(t, auth.VerifyPassword("wrong", hashed))
	})

	t.Run("Legacy plaintext match", func(t *testing.T) {
		assert.True(t, auth.VerifyPassword("oldpassword", "oldpassword"))
	})

	t.Run("Legacy plaintext mismatch", func(t *testing.T) {
		assert.False(t, auth.VerifyPassword("wrong", "oldpassword"))
	})

	t.Run("Plaintext that merely resembles a hash stays bcrypt-compared", func(t *testing.T) {
		assert.False(t, auth.VerifyPassword("$2a$garbage", "$2a$garbage"))
	})
}
