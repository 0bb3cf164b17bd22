package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!Pass")
	require.NoError(t, err)

	assert.NotEqual(t, "Str0ng!Pass", hash)
	assert.True(t, CheckPasswordHash("Str0ng!Pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateTempPassword(t *testing.T) {
	a, err := GenerateTempPassword(12)
	require.NoError(t, err)
	b, err := GenerateTempPassword(12)
	require.NoError(t, err)

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
	for _, r := range a {
		assert.True(t, strings.ContainsRune(tempPasswordAlphabet, r))
	}
}
