package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAndParse(t *testing.T) {
	secret := NewSecret()
	assert.Len(t, secret, SecretLength)

	plain := Format(42, secret)
	id, parsed, err := Parse(plain)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, secret, parsed)
}

func TestParseRejectsMalformedTokens(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		"|secretonly",
		"42|",
		"abc|secret",
		"-1|secret",
		"0|secret",
	}
	for _, plain := range cases {
		_, _, err := Parse(plain)
		assert.Error(t, err, "expected %q to be rejected", plain)
	}
}

func TestHashIsDeterministicAndOneWay(t *testing.T) {
	secret := NewSecret()
	assert.Equal(t, Hash(secret), Hash(secret))
	assert.NotEqual(t, secret, Hash(secret))
	assert.NotEqual(t, Hash(secret), Hash(secret+"x"))
	// sha256 hex
	assert.Len(t, Hash(secret), 64)
}

func TestNewSecretIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := NewSecret()
		assert.False(t, seen[s])
		seen[s] = true
	}
}
