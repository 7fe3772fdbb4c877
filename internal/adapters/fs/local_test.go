package fs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/iox/internal/adapters/fs"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	lfs := fs.NewLocalFileSystem()
	path := filepath.Join(t.TempDir(), "probe.txt")

	exists, err := lfs.Exists(path)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("here"), 0o644))

	exists, err = lfs.Exists(path)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestOpenFile(t *testing.T) {
	lfs := fs.NewLocalFileSystem()
	path := filepath.Join(t.TempDir(), "payload.bin")

	f, err := lfs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	require.NoError(t, err)
	require.Equal(t, path, f.Name())

	_, err = f.Write([]byte("round trip"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = lfs.OpenFile(path, os.O_RDONLY, 0o644)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "round trip", string(data))
	require.NoError(t, f.Close())
}

func TestOpenFileMissing(t *testing.T) {
	lfs := fs.NewLocalFileSystem()

	_, err := lfs.OpenFile(filepath.Join(t.TempDir(), "absent.txt"), os.O_RDONLY, 0o644)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}
