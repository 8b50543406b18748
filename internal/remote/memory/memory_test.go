package memory_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/budget-tracker/backend/internal/remote"
	"github.com/budget-tracker/backend/internal/remote/memory"
	"github.com/budget-tracker/backend/internal/remote/remotetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	remotetest.Run(t, memory.New(), "")
}

func TestOffline(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	s.SetOffline(errors.New("no network"))

	err := s.PutDocument(ctx, "profiles/hemank/settings/categoryBudgets", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, remote.ErrUnavailable)
	assert.Contains(t, err.Error(), "no network")

	_, err = s.ListCollection(ctx, "profiles/hemank/transactions")
	assert.ErrorIs(t, err, remote.ErrUnavailable)
	assert.Equal(t, 0, s.Writes())

	s.SetOffline(nil)
	require.Nil(t, s.PutDocument(ctx, "profiles/hemank/settings/categoryBudgets", json.RawMessage(`{}`)))
	assert.Equal(t, 1, s.Writes())
}

func TestDataIsCopied(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	data := json.RawMessage(`{"a":1}`)

	require.Nil(t, s.PutDocument(ctx, "c/d", data))
	data[2] = 'b'

	stored, err := s.GetDocument(ctx, "c/d")
	require.Nil(t, err)
	assert.JSONEq(t, `{"a":1}`, string(stored))
}
