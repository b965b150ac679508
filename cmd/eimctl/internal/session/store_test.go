package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ali-Odeh/Electricity-Invoice-Management/pkg/sdk"
)

func testSession() *sdk.Session {
	return &sdk.Session{
		Token: "jwt-admin",
		Identity: sdk.Identity{
			UserID:       7,
			Name:         "Amal Khalil",
			Email:        "a@x.com",
			Role:         sdk.RoleAdmin,
			Roles:        []sdk.Role{sdk.RoleAdmin, sdk.RoleAuditor},
			ProviderID:   2,
			ProviderName: "North Grid",
		},
	}
}

func TestFileStore_CommitRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStoreAt(dir)
	require.NoError(t, err)
	require.NoError(t, store.Commit(testSession()))
	assert.NotNil(t, store.Current())

	// A second store over the same directory stands in for a process
	// restart: everything must come back from disk.
	reopened, err := NewFileStoreAt(dir)
	require.NoError(t, err)
	assert.Nil(t, reopened.Current())

	restored, err := reopened.Restore()
	require.NoError(t, err)
	assert.Equal(t, testSession(), restored)
	assert.Equal(t, restored, reopened.Current())
}

func TestFileStore_RestoreWithoutPersistedSession(t *testing.T) {
	store, err := NewFileStoreAt(t.TempDir())
	require.NoError(t, err)

	_, err = store.Restore()
	assert.ErrorIs(t, err, sdk.ErrNoSession)
	assert.Nil(t, store.Current())
}

func TestFileStore_RestoreWithPartialState(t *testing.T) {
	t.Run("token without identity", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("orphan"), 0600))

		store, err := NewFileStoreAt(dir)
		require.NoError(t, err)
		_, err = store.Restore()
		assert.ErrorIs(t, err, sdk.ErrNoSession)
	})

	t.Run("corrupt identity", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("tok"), 0600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "identity.json"), []byte("{not json"), 0600))

		store, err := NewFileStoreAt(dir)
		require.NoError(t, err)
		_, err = store.Restore()
		assert.ErrorIs(t, err, sdk.ErrNoSession)
	})
}

func TestFileStore_RestoreTrimsTokenWhitespace(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStoreAt(dir)
	require.NoError(t, err)
	require.NoError(t, store.Commit(testSession()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("jwt-admin\n"), 0600))
	restored, err := store.Restore()
	require.NoError(t, err)
	assert.Equal(t, "jwt-admin", restored.Token)
}

func TestFileStore_Clear(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStoreAt(dir)
	require.NoError(t, err)
	require.NoError(t, store.Commit(testSession()))

	require.NoError(t, store.Clear())
	assert.Nil(t, store.Current())
	_, err = os.Stat(filepath.Join(dir, "token"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "identity.json"))
	assert.True(t, os.IsNotExist(err))

	// Idempotent.
	require.NoError(t, store.Clear())

	_, err = store.Restore()
	assert.ErrorIs(t, err, sdk.ErrNoSession)
}

func TestFileStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStoreAt(dir)
	require.NoError(t, err)
	require.NoError(t, store.Commit(testSession()))

	info, err := os.Stat(filepath.Join(dir, "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(dir, "identity.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
