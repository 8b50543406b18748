// Package remotetest verifies that a remote.Store implementation behaves
// like the others.
package remotetest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/budget-tracker/backend/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run executes the behaviour tests against the store. Collections are
// created below prefix so that shared backends can be used.
func Run(t *testing.T, s remote.Store, prefix string) {
	ctx := context.Background()
	collection := remote.Join(prefix, "profiles", "hemank", "transactions")

	t.Run("empty collection", func(t *testing.T) {
		docs, err := s.ListCollection(ctx, remote.Join(prefix, "profiles", "nobody", "transactions"))
		require.Nil(t, err)
		assert.Len(t, docs, 0)
	})

	t.Run("replace collection", func(t *testing.T) {
		require.Nil(t, s.ReplaceCollection(ctx, collection, []remote.Document{
			{ID: "2", Data: json.RawMessage(`{"id":2}`)},
			{ID: "1", Data: json.RawMessage(`{"id":1}`)},
			{ID: "3", Data: json.RawMessage(`{"id":3}`)},
		}))

		require.Nil(t, s.ReplaceCollection(ctx, collection, []remote.Document{
			{ID: "1", Data: json.RawMessage(`{"id":1,"amount":"5"}`)},
			{ID: "2", Data: json.RawMessage(`{"id":2}`)},
		}))

		docs, err := s.ListCollection(ctx, collection)
		require.Nil(t, err)
		require.Len(t, docs, 2, "Documents missing from the replacement must be deleted")
		assert.Equal(t, "1", docs[0].ID)
		assert.JSONEq(t, `{"id":1,"amount":"5"}`, string(docs[0].Data))
		assert.Equal(t, "2", docs[1].ID)
	})

	t.Run("replace with nothing", func(t *testing.T) {
		empty := remote.Join(prefix, "profiles", "jyoti", "archived")
		require.Nil(t, s.ReplaceCollection(ctx, empty, []remote.Document{{ID: "2024-01", Data: json.RawMessage(`{}`)}}))
		require.Nil(t, s.ReplaceCollection(ctx, empty, nil))

		docs, err := s.ListCollection(ctx, empty)
		require.Nil(t, err)
		assert.Len(t, docs, 0)
	})

	t.Run("documents", func(t *testing.T) {
		path := remote.Join(prefix, "profiles", "hemank", "settings", "categoryBudgets")

		_, err := s.GetDocument(ctx, path)
		assert.ErrorIs(t, err, remote.ErrNotFound)

		require.Nil(t, s.PutDocument(ctx, path, json.RawMessage(`{"Courses":"300"}`)))
		require.Nil(t, s.PutDocument(ctx, path, json.RawMessage(`{"Courses":"350"}`)))

		data, err := s.GetDocument(ctx, path)
		require.Nil(t, err)
		assert.JSONEq(t, `{"Courses":"350"}`, string(data))
	})

	t.Run("nested collections are separate", func(t *testing.T) {
		docs, err := s.ListCollection(ctx, remote.Join(prefix, "profiles", "hemank"))
		require.Nil(t, err)
		assert.Len(t, docs, 0)
	})

	t.Run("invalid path", func(t *testing.T) {
		err := s.PutDocument(ctx, "settings", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, remote.ErrInvalidPath)
	})
}
