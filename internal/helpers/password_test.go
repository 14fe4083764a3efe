package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"short", "a"},
		{"typical", "secret1"},
		{"long", "correct horse battery staple with extra length"},
		{"unicode", "пароль123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			require.NoError(t, err)
			require.NotEqual(t, tt.password, hash)

			match, err := CheckPassword(tt.password, hash)
			require.NoError(t, err)
			assert.True(t, match)

			match, err = CheckPassword(tt.password+"x", hash)
			require.NoError(t, err)
			assert.False(t, match)
		})
	}
}

func TestHashPassword_SaltIsRandom(t *testing.T) {
	first, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	second, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestCheckPassword_CorruptHash(t *testing.T) {
	match, err := CheckPassword("secret1", "not-a-bcrypt-hash")
	assert.False(t, match)
	assert.ErrorIs(t, err, ErrCorruptHash)
}
