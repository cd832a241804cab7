package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("segredo123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "segredo123", hash)

	require.NoError(t, ComparePassword(hash, "segredo123"))
	require.Error(t, ComparePassword(hash, "errada"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("mesma-senha", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("mesma-senha", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
