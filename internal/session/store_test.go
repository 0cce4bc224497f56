package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/paydesk/internal/common"
)

func TestFileStore(t *testing.T) {
	t.Run("empty store has no session", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		_, err := store.Token()
		assert.ErrorIs(t, err, common.ErrNoSession)
	})

	t.Run("round trip", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		require.NoError(t, store.SetToken("tok-123"))

		token, err := store.Token()
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("state file is private", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(dir)
		require.NoError(t, store.SetToken("tok-123"))

		info, err := os.Stat(filepath.Join(dir, stateFileName))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("clear removes the session", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		require.NoError(t, store.SetToken("tok-123"))
		require.NoError(t, store.Clear())

		_, err := store.Token()
		assert.ErrorIs(t, err, common.ErrNoSession)
	})

	t.Run("clearing an absent session is fine", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		assert.NoError(t, store.Clear())
	})

	t.Run("corrupt state file reads as no session", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0600))

		store := NewFileStore(dir)
		_, err := store.Token()
		assert.ErrorIs(t, err, common.ErrNoSession)
	})
}
