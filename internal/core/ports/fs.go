package ports

import (
	"io"
	"os"
)

// File is the capability set adapters must provide for open files.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the path the file was opened with.
	Name() string
}

// FileSystem abstracts file access so streams can be exercised against
// fakes and alternative backends.
type FileSystem interface {
	// OpenFile opens a file with the given flags and permissions.
	OpenFile(name string, flag int, perm os.FileMode) (File, error)

	// Exists reports whether a path is present.
	Exists(path string) (bool, error)
}
