package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "password123"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestVerifyPassword_BcryptHash(t *testing.T) {
	password := "password123"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, VerifyPassword(hashedPassword, password))
	assert.False(t, VerifyPassword(hashedPassword, "wrongpassword"))
}

func TestVerifyPassword_LegacyPlaintext(t *testing.T) {
	// Legacy rows store the password verbatim
	assert.True(t, VerifyPassword("password123", "password123"))
	assert.False(t, VerifyPassword("password123", "wrongpassword"))
	assert.False(t, VerifyPassword("", "password123"))
}
