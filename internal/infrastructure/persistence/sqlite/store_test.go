package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"), logger.Silent)
	require.NoError(t, err)
	return store
}

func TestStore_MissingCollectionReadsEmpty(t *testing.T) {
	store := newTestStore(t)

	data, err := store.Get(context.Background(), "inventory")

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	payload := []byte(`[{"id":"a","name":"Milk"}]`)

	require.NoError(t, store.Set(context.Background(), "inventory", payload))

	data, err := store.Get(context.Background(), "inventory")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestStore_SetReplacesSnapshot(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(context.Background(), "inventory", []byte(`["old"]`)))
	require.NoError(t, store.Set(context.Background(), "inventory", []byte(`["new"]`)))

	data, err := store.Get(context.Background(), "inventory")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["new"]`), data)
}

func TestStore_DeleteDropsCollection(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(context.Background(), "history", []byte(`[]`)))
	require.NoError(t, store.Delete(context.Background(), "history"))

	data, err := store.Get(context.Background(), "history")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStore_DeleteAbsentCollectionIsANoOp(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "never_written"))
}

func TestStore_CollectionsAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(context.Background(), "inventory", []byte(`["items"]`)))
	require.NoError(t, store.Set(context.Background(), "stats", []byte(`{"moneySaved":10}`)))
	require.NoError(t, store.Delete(context.Background(), "inventory"))

	data, err := store.Get(context.Background(), "stats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"moneySaved":10}`), data)
}

func TestStore_SnapshotsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persisted.db")

	first, err := NewStore(path, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, first.Set(context.Background(), "saved_recipes", []byte(`[{"id":"r-1"}]`)))

	second, err := NewStore(path, logger.Silent)
	require.NoError(t, err)

	data, err := second.Get(context.Background(), "saved_recipes")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"r-1"}]`), data)
}
