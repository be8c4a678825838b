package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.True(t, PasswordMatches(hash, "pass"))
	assert.False(t, PasswordMatches(hash, "wrong"))
	assert.False(t, IsBcryptHash("pass"))
	assert.False(t, PasswordMatches("pass", "pass"), "plaintext is never accepted as a hash")
}

func TestHashPassword_CostFallback(t *testing.T) {
	hash, err := HashPassword("pass", 1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
