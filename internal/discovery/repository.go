package discovery

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const gitMetadataDirectoryNameConstant = ".git"

// StatFileSystem exposes the metadata lookup needed to recognize repositories.
type StatFileSystem interface {
	Stat(path string) (fs.FileInfo, error)
}

// RepositoryDetector recognizes repository roots by their metadata directory.
type RepositoryDetector struct {
	fileSystem StatFileSystem
}

// NewRepositoryDetector constructs a detector backed by the supplied filesystem.
func NewRepositoryDetector(fileSystem StatFileSystem) *RepositoryDetector {
	return &RepositoryDetector{fileSystem: fileSystem}
}

// IsRepositoryRoot reports whether candidatePath is a directory containing a .git directory.
// The check is structural only and never invokes git.
func (detector *RepositoryDetector) IsRepositoryRoot(candidatePath string) bool {
	if detector == nil || detector.fileSystem == nil {
		return false
	}

	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return false
	}

	if !detector.isDirectory(trimmedPath) {
		return false
	}
	return detector.isDirectory(filepath.Join(trimmedPath, gitMetadataDirectoryNameConstant))
}

func (detector *RepositoryDetector) isDirectory(path string) bool {
	fileInfo, statError := detector.fileSystem.Stat(path)
	if statError != nil {
		return false
	}
	return fileInfo.IsDir()
}
