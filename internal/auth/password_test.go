package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("super_password123")
	require.NoError(t, err)

	parts := strings.SplitN(hash, ".", 2)
	require.Len(t, parts, 2, "stored format is hash.salt")

	assert.True(t, ComparePassword("super_password123", hash))
	assert.False(t, ComparePassword("wrong_password", hash))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, ComparePassword("same-password", first))
	assert.True(t, ComparePassword("same-password", second))
}

func TestComparePassword_MalformedStored(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		"plainhash.",
		"zz-not-hex.abcdef",
		"abcdef.zz-not-hex",
	}
	for _, stored := range cases {
		assert.False(t, ComparePassword("whatever", stored), "stored=%q", stored)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}
