package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRUT(t *testing.T) {
	t.Run("parses plain form", func(t *testing.T) {
		rut, err := ParseRUT("12345678-5")
		require.NoError(t, err)
		assert.Equal(t, 12345678, rut.Number())
		assert.Equal(t, byte('5'), rut.CheckDigit())
		assert.Equal(t, "12345678-5", rut.String())
	})

	t.Run("parses dotted form", func(t *testing.T) {
		rut, err := ParseRUT("12.345.678-5")
		require.NoError(t, err)
		assert.Equal(t, "12345678-5", rut.String())
	})

	t.Run("accepts K check digit", func(t *testing.T) {
		// 20.347.878-K is a valid modulo-11 pair
		rut, err := ParseRUT("20347878-k")
		require.NoError(t, err)
		assert.Equal(t, byte('K'), rut.CheckDigit())
	})

	t.Run("rejects wrong check digit", func(t *testing.T) {
		_, err := ParseRUT("12345678-9")
		assert.ErrorIs(t, err, ErrInvalidRUTCheckDigit)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, input := range []string{"", "-", "abc", "12a45678-5", "0-0"} {
			_, err := ParseRUT(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestNormalizeRUT(t *testing.T) {
	assert.Equal(t, "12345678-5", NormalizeRUT("12.345.678-5"))
	assert.Equal(t, "12345678-5", NormalizeRUT(" 12345678-5 "))
	// Unparseable input passes through trimmed, uniqueness is still
	// enforced at the store level.
	assert.Equal(t, "not-a-rut", NormalizeRUT(" not-a-rut "))
}

func TestIsValidRUT(t *testing.T) {
	assert.True(t, IsValidRUT("12345678-5"))
	assert.False(t, IsValidRUT("12345678-0"))
}
