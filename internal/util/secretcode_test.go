package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecretCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateSecretCode()
		require.NoError(t, err)

		assert.Len(t, code, SecretCodeLength)
		assert.True(t, IsValidSecretCode(code), "generated code %q must validate", code)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(secretCodeAlphabet, c))
		}
		seen[code] = true
	}
	// 36^9 codes; 50 draws colliding would point at a broken generator.
	assert.Len(t, seen, 50)
}

func TestIsValidSecretCode(t *testing.T) {
	assert.True(t, IsValidSecretCode("ABC123XYZ"))
	assert.True(t, IsValidSecretCode("000000000"))

	assert.False(t, IsValidSecretCode(""))
	assert.False(t, IsValidSecretCode("ABC123"))
	assert.False(t, IsValidSecretCode("ABC123XYZ0"), "too long")
	assert.False(t, IsValidSecretCode("abc123xyz"), "lowercase rejected")
	assert.False(t, IsValidSecretCode("ABC 23XYZ"))
	assert.False(t, IsValidSecretCode("ABC12#XYZ"))
}
