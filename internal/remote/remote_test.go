package remote_test

import (
	"testing"

	"github.com/budget-tracker/backend/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	collection, id, err := remote.Split("profiles/hemank/settings/categoryBudgets")
	require.Nil(t, err)
	assert.Equal(t, "profiles/hemank/settings", collection)
	assert.Equal(t, "categoryBudgets", id)

	for _, invalid := range []string{"", "/", "transactions", "profiles/"} {
		_, _, err := remote.Split(invalid)
		assert.ErrorIs(t, err, remote.ErrInvalidPath, "%q must not split", invalid)
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "profiles/hemank/transactions/17", remote.Join("profiles", "hemank", "transactions", "17"))
	assert.Equal(t, "profiles/jyoti", remote.Join("/profiles/", "jyoti/"))
}
