package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", h)
	assert.True(t, strings.HasPrefix(h, "$2a$"))
	assert.True(t, CheckPassword(h, "password"))
	assert.False(t, CheckPassword(h, "wrong"))
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("")
	require.ErrorIs(t, err, ErrEmptyPassword)
	assert.Empty(t, h)
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("x", 80))
	require.Error(t, err)
}
