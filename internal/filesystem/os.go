package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts the file operations used to inspect repositories and store artifacts.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Abs(path string) (string, error)
	MkdirAll(path string, permissions fs.FileMode) error
	CreateExclusive(path string, data []byte, permissions fs.FileMode) error
	Remove(path string) error
	TempDir() string
}

// OSFileSystem implements the filesystem collaborators using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Abs resolves an absolute path.
func (OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// CreateExclusive writes data to a new file and fails with fs.ErrExist when the path is taken.
func (OSFileSystem) CreateExclusive(path string, data []byte, permissions fs.FileMode) error {
	file, openError := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, permissions)
	if openError != nil {
		return openError
	}

	_, writeError := file.Write(data)
	closeError := file.Close()
	if writeError != nil {
		_ = os.Remove(path)
		return writeError
	}
	if closeError != nil {
		_ = os.Remove(path)
		return closeError
	}
	return nil
}

// Remove deletes a file or an empty directory.
func (OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// TempDir reports the operating system's directory for transient files.
func (OSFileSystem) TempDir() string {
	return os.TempDir()
}

var _ FileSystem = OSFileSystem{}
