package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct-horse-battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.NoError(t, hasher.Compare(hash, "correct-horse-battery"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}

func TestNewBcryptHasherInvalidCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
