package fsutil

import (
	"os"
	"path/filepath"
)

// OSFileSystem implements filesystem operations using the local OS filesystem
// primitives. Consumers declare the subset they need as their own interfaces.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem backed by real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info for a path without following symlinks.
func (r *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ListDir lists the contents of a directory.
// Returns a slice of FileInfo for each entry in the directory.
func (r *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Mkdir creates a single directory (non-recursive).
func (r *OSFileSystem) Mkdir(path string) error {
	return os.Mkdir(path, 0o755)
}

// Remove removes a file or an empty directory.
func (r *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll removes a path and any children it contains.
func (r *OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Getwd returns the process working directory.
func (r *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir changes the process working directory.
func (r *OSFileSystem) Chdir(path string) error {
	return os.Chdir(path)
}

// EvalSymlinks returns the path after resolving any symbolic links,
// cleaned of "." and ".." segments.
func (r *OSFileSystem) EvalSymlinks(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// UserHomeDir returns the current user's home directory.
func (r *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ReadFile reads the entire contents of a file.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
