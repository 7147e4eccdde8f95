package credstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maartenv/kampeer/internal/api"
)

func TestStore_SetAndGet(t *testing.T) {
	store := New(t.TempDir())

	user := &api.User{ID: "1", Name: "Pieter", Email: "pieter@example.com", Role: api.RoleUser}
	err := store.Set("abc", user)
	require.NoError(t, err)

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	got, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestStore_EmptyDir(t *testing.T) {
	store := New(t.TempDir())

	_, ok := store.Token()
	assert.False(t, ok)

	_, ok = store.User()
	assert.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Set("abc", &api.User{ID: "1"}))
	require.NoError(t, store.Clear())

	_, ok := store.Token()
	assert.False(t, ok)
	_, ok = store.User()
	assert.False(t, ok)

	// Clearing an already-empty store is fine.
	require.NoError(t, store.Clear())
}

func TestStore_IndependentEntries(t *testing.T) {
	store := New(t.TempDir())

	// A token can exist without a user record; the session layer decides
	// what to do with that state.
	require.NoError(t, store.SetToken("orphan"))

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "orphan", token)

	_, ok = store.User()
	assert.False(t, ok)
}

func TestStore_SetWithNilUserLeavesNoUserEntry(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Set("abc", &api.User{ID: "1"}))
	require.NoError(t, store.Set("def", nil))

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "def", token)

	_, ok = store.User()
	assert.False(t, ok)
}

func TestStore_CorruptUserEntry(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600))

	_, ok := store.User()
	assert.False(t, ok)
}

func TestStore_FileModes(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, store.Set("abc", &api.User{ID: "1"}))

	info, err := os.Stat(filepath.Join(dir, "auth_token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
