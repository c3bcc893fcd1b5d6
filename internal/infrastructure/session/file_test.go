package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "hunter", "session"))
}

func TestFileStore_GetWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Get()

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_SetThenGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("Bearer T1"))

	token, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "Bearer T1", token)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	require.NoError(t, NewFileStore(path).Set("Bearer T1"))

	token, err := NewFileStore(path).Get()
	require.NoError(t, err)
	assert.Equal(t, "Bearer T1", token)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("Bearer old"))
	require.NoError(t, store.Set("Bearer new"))

	token, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "Bearer new", token)
}

func TestFileStore_Clear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("Bearer T1"))

	require.NoError(t, store.Clear())

	token, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_ClearWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Clear())
}
