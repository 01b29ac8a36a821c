package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash := HashPassword("Secret1!")

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret1!", hash)
	assert.True(t, CheckPassword("Secret1!", hash))
}

func TestCheckPassword_RejectsWrongPassword(t *testing.T) {
	hash := HashPassword("Secret1!")

	assert.False(t, CheckPassword("WrongPass1!", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPassword_DifferentHashesForSameInput(t *testing.T) {
	// bcrypt salts, so two hashes of the same password differ.
	assert.NotEqual(t, HashPassword("Secret1!"), HashPassword("Secret1!"))
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
	assert.Len(t, NewID(), 36)
}
