package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDB_PutGetDelete(t *testing.T) {
	store, err := OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("cart", []byte(`[]`)))

	value, err := store.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))

	require.NoError(t, store.Delete("cart"))

	_, err = store.Get("cart")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestLevelDB_GetAbsentKey(t *testing.T) {
	store, err := OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestLevelDB_DeleteAbsentKeyIsNoOp(t *testing.T) {
	store, err := OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Delete("missing"))
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put("token", []byte("jwt-token")))
	require.NoError(t, store.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", string(value))
}
