// Package fs provides the local disk implementation of the file system
// port.
package fs

import (
	"errors"
	"os"

	"github.com/iamNilotpal/iox/internal/core/ports"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Opens a file with the given flags and permissions.
func (lfs *LocalFileSystem) OpenFile(name string, flag int, perm os.FileMode) (ports.File, error) {
	file, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
