package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt salts per call, so equal inputs must give different digests.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-password", first))
	assert.True(t, CheckPassword("same-password", second))
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct horse battery staple", digest))
	assert.False(t, CheckPassword("wrong password", digest))
	assert.False(t, CheckPassword("", digest))
	assert.False(t, CheckPassword("correct horse battery staple", "not-a-bcrypt-digest"))
}

func TestHashPasswordNeverReturnsPlaintext(t *testing.T) {
	digest, err := HashPassword("visible-secret")
	require.NoError(t, err)
	assert.NotContains(t, digest, "visible-secret")
}
