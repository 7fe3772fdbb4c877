package iox_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/iamNilotpal/iox/pkg/iox"
	"github.com/stretchr/testify/require"
)

type memFile struct {
	bytes.Buffer
	closed bool
}

func (m *memFile) Close() error {
	m.closed = true
	return nil
}

func TestWriteAndReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	lines := []string{"alpha", "beta", "gamma"}

	require.NoError(t, iox.WriteLines(iox.PathOf(path), slices.Values(lines)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "alpha\nbeta\ngamma\n", string(raw))

	it, err := iox.ReadLines(iox.PathOf(path))
	require.NoError(t, err)
	got := slices.Collect(it.All())
	require.Equal(t, lines, got)
	require.True(t, it.Closed())
	require.NoError(t, it.Err())
}

func TestReadLinesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	it, err := iox.ReadLines(iox.PathOf(path))
	require.NoError(t, err)
	require.Empty(t, slices.Collect(it.All()))
	require.True(t, it.Closed())
	require.NoError(t, it.Err())
}

func TestReadLinesMissing(t *testing.T) {
	_, err := iox.ReadLines(iox.PathOf(filepath.Join(t.TempDir(), "absent.txt")))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestReadLinesBorrowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)

	it, err := iox.ReadLines(iox.FileOf(f))
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, slices.Collect(it.All()))
	require.True(t, it.Closed())

	// Exhaustion released the handle, not the borrowed file.
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestWriteLinesBorrowed(t *testing.T) {
	buf := &memFile{}

	require.NoError(t, iox.WriteLines(iox.FileOf(buf), slices.Values([]string{"x", "y"})))
	require.Equal(t, "x\ny\n", buf.String())
	require.False(t, buf.closed)
}
