package sessionstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"roost/config"
	"roost/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *entity.Session {
	return &entity.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "bearer",
		ExpiresAt:    time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	assert.Nil(t, store.Load(ctx, "missing"))

	store.Save(ctx, "sid-1", testSession())

	loaded := store.Load(ctx, "sid-1")
	require.NotNil(t, loaded)
	assert.Equal(t, "access-1", loaded.AccessToken)
	assert.Equal(t, testSession().ExpiresAt.Unix(), loaded.ExpiresAt.Unix())

	store.Delete(ctx, "sid-1")
	assert.Nil(t, store.Load(ctx, "sid-1"))

	// Deleting again is not an error.
	store.Delete(ctx, "sid-1")
}

func TestFileStoreCorruptBlobBehavesLikeSignedOut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)

	path := filepath.Join(dir, "sb-auth-token-sid-1.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	assert.Nil(t, store.Load(context.Background(), "sid-1"))
}

func TestFileStoreKeysAndDeleteAll(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	store.Save(ctx, "sid-1", testSession())
	store.Save(ctx, "sid-2", testSession())

	// Unrelated files are not session keys.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	assert.ElementsMatch(t, []string{"sid-1", "sid-2"}, store.Keys(ctx))

	store.DeleteAll(ctx)
	assert.Empty(t, store.Keys(ctx))
	assert.Nil(t, store.Load(ctx, "sid-1"))
}

func TestFileStoreRejectsMalformedSessionID(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	for _, id := range []string{"", "..", "../evil", "a/b", `a\b`} {
		store.Save(ctx, id, testSession())
		assert.Nil(t, store.Load(ctx, id), "id %q", id)
	}

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(testLogger())
	ctx := context.Background()

	assert.Nil(t, store.Load(ctx, "missing"))

	store.Save(ctx, "sid-1", testSession())
	store.Save(ctx, "sid-2", testSession())
	assert.ElementsMatch(t, []string{"sid-1", "sid-2"}, store.Keys(ctx))

	store.Delete(ctx, "sid-1")
	assert.Nil(t, store.Load(ctx, "sid-1"))

	store.DeleteAll(ctx)
	assert.Empty(t, store.Keys(ctx))
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(testLogger())
	ctx := context.Background()

	store.Save(ctx, "sid-1", testSession())

	loaded := store.Load(ctx, "sid-1")
	require.NotNil(t, loaded)
	loaded.AccessToken = "mutated"

	again := store.Load(ctx, "sid-1")
	require.NotNil(t, again)
	assert.Equal(t, "access-1", again.AccessToken)
}

func TestNewDefaultsToMemory(t *testing.T) {
	store, err := New(StoreParams{
		Config: &config.Config{},
		Logger: testLogger(),
	})
	require.NoError(t, err)
	require.NotNil(t, store)

	ctx := context.Background()
	store.Save(ctx, "sid-1", testSession())
	assert.NotNil(t, store.Load(ctx, "sid-1"))
}

func TestNewFileProviderRequiresPath(t *testing.T) {
	_, err := New(StoreParams{
		Config: &config.Config{
			SessionStore: &config.SessionStoreConfig{Provider: "file"},
		},
		Logger: testLogger(),
	})
	assert.ErrorContains(t, err, "path is required")
}

func TestNewRedisProviderRequiresAddr(t *testing.T) {
	_, err := New(StoreParams{
		Config: &config.Config{
			SessionStore: &config.SessionStoreConfig{Provider: "redis"},
		},
		Logger: testLogger(),
	})
	assert.ErrorContains(t, err, "redis address is required")
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(StoreParams{
		Config: &config.Config{
			SessionStore: &config.SessionStoreConfig{Provider: "etcd"},
		},
		Logger: testLogger(),
	})
	assert.ErrorContains(t, err, "unknown session store provider")
}
