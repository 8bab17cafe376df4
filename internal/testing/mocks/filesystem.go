// Package mocks provides shared test doubles for filesystem-dependent code.
package mocks

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MockFileInfo implements os.FileInfo for mock entries.
type MockFileInfo struct {
	FileName  string
	FileSize  int64
	FileMode  os.FileMode
	FileIsDir bool
}

func (m *MockFileInfo) Name() string       { return m.FileName }
func (m *MockFileInfo) Size() int64        { return m.FileSize }
func (m *MockFileInfo) Mode() os.FileMode  { return m.FileMode }
func (m *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *MockFileInfo) IsDir() bool        { return m.FileIsDir }
func (m *MockFileInfo) Sys() any           { return nil }

// MockFileSystem is a map-backed in-memory filesystem. All paths are
// cleaned absolute paths.
type MockFileSystem struct {
	Files  map[string][]byte
	Dirs   map[string]bool
	Errors map[string]error
	Cwd    string
	// CwdErr makes Getwd fail, simulating a working directory that has
	// been removed out from under the process.
	CwdErr error
}

// NewMockFileSystem creates a mock filesystem containing only the root.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:  make(map[string][]byte),
		Dirs:   map[string]bool{"/": true},
		Errors: make(map[string]error),
		Cwd:    "/",
	}
}

// CreateDir adds a directory (parents are not created implicitly).
func (m *MockFileSystem) CreateDir(path string) {
	m.Dirs[filepath.Clean(path)] = true
}

// CreateFile adds a regular file.
func (m *MockFileSystem) CreateFile(path string, content []byte) {
	m.Files[filepath.Clean(path)] = content
}

// SetError injects an error for any operation touching path.
func (m *MockFileSystem) SetError(path string, err error) {
	m.Errors[filepath.Clean(path)] = err
}

func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	path = filepath.Clean(path)
	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	if m.Dirs[path] {
		return &MockFileInfo{FileName: filepath.Base(path), FileMode: os.ModeDir | 0o755, FileIsDir: true}, nil
	}
	if content, ok := m.Files[path]; ok {
		return &MockFileInfo{FileName: filepath.Base(path), FileSize: int64(len(content)), FileMode: 0o644}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (m *MockFileSystem) Lstat(path string) (os.FileInfo, error) {
	return m.Stat(path)
}

func (m *MockFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	path = filepath.Clean(path)
	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	if !m.Dirs[path] {
		if _, ok := m.Files[path]; ok {
			return nil, &os.PathError{Op: "open", Path: path, Err: errors.New("not a directory")}
		}
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	var infos []os.FileInfo
	for dir := range m.Dirs {
		if dir != path && filepath.Dir(dir) == path {
			infos = append(infos, &MockFileInfo{FileName: filepath.Base(dir), FileMode: os.ModeDir | 0o755, FileIsDir: true})
		}
	}
	for file, content := range m.Files {
		if filepath.Dir(file) == path {
			infos = append(infos, &MockFileInfo{FileName: filepath.Base(file), FileSize: int64(len(content)), FileMode: 0o644})
		}
	}
	return infos, nil
}

func (m *MockFileSystem) Mkdir(path string) error {
	path = filepath.Clean(path)
	if err, ok := m.Errors[path]; ok {
		return err
	}
	if m.Dirs[path] {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrExist}
	}
	if _, ok := m.Files[path]; ok {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrExist}
	}
	if !m.Dirs[filepath.Dir(path)] {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrNotExist}
	}
	m.Dirs[path] = true
	return nil
}

func (m *MockFileSystem) Remove(path string) error {
	path = filepath.Clean(path)
	if err, ok := m.Errors[path]; ok {
		return err
	}
	if m.Dirs[path] {
		children, _ := m.ListDir(path)
		if len(children) > 0 {
			return &os.PathError{Op: "remove", Path: path, Err: errors.New("directory not empty")}
		}
		delete(m.Dirs, path)
		return nil
	}
	if _, ok := m.Files[path]; ok {
		delete(m.Files, path)
		return nil
	}
	return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
}

func (m *MockFileSystem) RemoveAll(path string) error {
	path = filepath.Clean(path)
	if err, ok := m.Errors[path]; ok {
		return err
	}
	prefix := path + string(filepath.Separator)
	for dir := range m.Dirs {
		if dir == path || strings.HasPrefix(dir, prefix) {
			delete(m.Dirs, dir)
		}
	}
	for file := range m.Files {
		if file == path || strings.HasPrefix(file, prefix) {
			delete(m.Files, file)
		}
	}
	return nil
}

func (m *MockFileSystem) EvalSymlinks(path string) (string, error) {
	path = filepath.Clean(path)
	if err, ok := m.Errors[path]; ok {
		return "", err
	}
	if !m.Dirs[path] {
		if _, ok := m.Files[path]; !ok {
			return "", &os.PathError{Op: "lstat", Path: path, Err: os.ErrNotExist}
		}
	}
	return path, nil
}

func (m *MockFileSystem) Getwd() (string, error) {
	if m.CwdErr != nil {
		return "", m.CwdErr
	}
	return m.Cwd, nil
}

func (m *MockFileSystem) Chdir(path string) error {
	path = filepath.Clean(path)
	if err, ok := m.Errors[path]; ok {
		return err
	}
	if !m.Dirs[path] {
		if _, ok := m.Files[path]; ok {
			return &os.PathError{Op: "chdir", Path: path, Err: errors.New("not a directory")}
		}
		return &os.PathError{Op: "chdir", Path: path, Err: os.ErrNotExist}
	}
	m.Cwd = path
	return nil
}
