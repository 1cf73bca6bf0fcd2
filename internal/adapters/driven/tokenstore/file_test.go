package tokenstore

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/notedump/internal/core/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token.json")
	store, err := NewFileStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return store
}

func testToken() domain.Token {
	return domain.Token{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
		TokenType:    "Bearer",
		Scope:        "Notes.Read",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(testToken()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "access-abc", loaded.AccessToken)
	assert.Equal(t, "refresh-xyz", loaded.RefreshToken)
	assert.Equal(t, "Bearer", loaded.TokenType)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	first := testToken()
	require.NoError(t, store.Save(first))

	second := testToken()
	second.AccessToken = "access-new"
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "access-new", loaded.AccessToken)
}

func TestFileStore_LoadAbsent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrTokenAbsent)
}

func TestFileStore_LoadCorruptDeletesFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	_, err := store.Load()
	require.ErrorIs(t, err, domain.ErrTokenCorrupt)

	// The bad file is gone, so the next load reports absence.
	_, err = store.Load()
	assert.ErrorIs(t, err, domain.ErrTokenAbsent)
}

func TestFileStore_DeleteIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(testToken()))
	require.NoError(t, store.Delete())
	require.NoError(t, store.Delete())

	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrTokenAbsent)
}

func TestFileStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(testToken()))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
