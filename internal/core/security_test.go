// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)

	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("secret99")
	require.NoError(t, err)

	ok, err := VerifyPasswordTimingSafe("secret99", &hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPasswordTimingSafe("wrong", &hash)
	require.NoError(t, err)
	assert.False(t, ok)

	// No stored hash still runs a comparison but never verifies.
	ok, err = VerifyPasswordTimingSafe("secret99", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	empty := ""
	ok, err = VerifyPasswordTimingSafe("secret99", &empty)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenerateResetToken(t *testing.T) {
	first, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
