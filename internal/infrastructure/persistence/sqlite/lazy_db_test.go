package sqlite_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnFirstPreferenceAccess(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "nested", "themesync.db")
	lazy := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = lazy.Close() })
	store := sqlite.NewLazyPreferenceStore(lazy)

	assert.False(t, lazy.IsInitialized())
	assert.NoFileExists(t, dbPath)

	_, ok, err := store.Get(ctx, "theme-mode")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, lazy.IsInitialized())
	assert.FileExists(t, dbPath)
	assert.Equal(t, dbPath, lazy.Path())
}

func TestLazyDB_SharedConnectionUnderConcurrency(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "themesync.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	store := sqlite.NewLazyPreferenceStore(lazy)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for _, mode := range []string{"light", "dark", "system", "dark", "light", "system", "dark", "light"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Set(ctx, "theme-mode", mode)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	first, err := lazy.DB(ctx)
	require.NoError(t, err)
	second, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)

	value, ok, err := store.Get(ctx, "theme-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, []string{"light", "dark", "system"}, value)
}

func TestLazyDB_UnopenableIsStorageError(t *testing.T) {
	ctx := testCtx()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "themesync.db"))
	store := sqlite.NewLazyPreferenceStore(lazy)

	_, _, err := store.Get(ctx, "theme-mode")
	require.Error(t, err)
	assert.Error(t, store.Set(ctx, "theme-mode", "dark"))
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_CloseBeforeOpen(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "themesync.db"))
	assert.NoError(t, lazy.Close())
}
