package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steppingClock returns a clock advancing one second per call.
func steppingClock() func() time.Time {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func backups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), LogFileName+".") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestRotator_RotatesPastMaxSize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	r, err := NewRotator(FileOptions{Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)
	r.now = steppingClock()
	t.Cleanup(func() { _ = r.Close() })

	chunk := bytes.Repeat([]byte("x"), 600<<10)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	assert.Empty(t, backups(t, dir))

	_, err = r.Write(chunk)
	require.NoError(t, err)
	assert.Len(t, backups(t, dir), 1)

	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestRotator_CompressesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(FileOptions{Dir: dir, MaxSizeMB: 1, MaxBackups: 2, Compress: true})
	require.NoError(t, err)
	r.now = steppingClock()
	t.Cleanup(func() { _ = r.Close() })

	chunk := bytes.Repeat([]byte("y"), 700<<10)
	for range 5 {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	names := backups(t, dir)
	assert.Len(t, names, 2)
	for _, n := range names {
		assert.True(t, strings.HasSuffix(n, ".gz"), n)
	}
}

func TestRotator_EmptyDir(t *testing.T) {
	_, err := NewRotator(FileOptions{})
	assert.Error(t, err)
}

func TestNewWithFile_WritesJSONToFile(t *testing.T) {
	var file bytes.Buffer
	logger := NewWithFile("debug", "json", &file)
	logger.Debug().Str("scheme", "light").Msg("painted")

	assert.Contains(t, file.String(), `"scheme":"light"`)
	assert.Contains(t, file.String(), `"level":"debug"`)
}
