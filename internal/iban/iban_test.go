package iban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonicalizes(t *testing.T) {
	acct, err := Parse("de02 1001 0010 9307 1186 03")
	require.NoError(t, err)
	assert.Equal(t, "DE02100100109307118603", acct.String())
	assert.Equal(t, "DE", acct.CountryCode())
	assert.Equal(t, "10010010", acct.BankCode())
}

func TestParseCompactInput(t *testing.T) {
	acct, err := Parse("DE89370400440532013000")
	require.NoError(t, err)
	assert.Equal(t, "DE89370400440532013000", acct.String())
	assert.Equal(t, "37040044", acct.BankCode())
}

func TestParseRejectsBadChecksum(t *testing.T) {
	_, err := Parse("DE03100100109307118603")
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"not an iban", "DE12", "XX00123456789"} {
		_, err := Parse(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmpty)
}
