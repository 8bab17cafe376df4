// Package path resolves possibly-relative path strings against a session's
// current directory.
package path

import (
	"os"
	"path/filepath"
	"strings"
)

// fileSystem is the filesystem subset the resolver needs.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	EvalSymlinks(path string) (string, error)
}

// Resolver turns a raw path string plus a current directory into an absolute
// path, performing no OS calls beyond existence and type checks.
type Resolver struct {
	fs        fileSystem
	lookupEnv func(key string) (string, bool)
}

// NewResolver creates a new path resolver.
func NewResolver(fs fileSystem) *Resolver {
	if fs == nil {
		panic("fs is required")
	}
	return &Resolver{fs: fs, lookupEnv: os.LookupEnv}
}

// NewResolverWithEnv creates a resolver with a custom environment lookup
// (for testing).
func NewResolverWithEnv(fs fileSystem, lookupEnv func(key string) (string, bool)) *Resolver {
	r := NewResolver(fs)
	r.lookupEnv = lookupEnv
	return r
}

// HomeDir returns the home-directory environment variable, or the filesystem
// root if it is unset.
func (r *Resolver) HomeDir() string {
	if home, ok := r.lookupEnv("HOME"); ok && home != "" {
		return home
	}
	return "/"
}

// Join maps a raw path onto base without touching the filesystem.
// Absolute paths pass through unchanged; relative paths are appended to base
// as-is, with no canonicalization of dot segments or symlinks.
func (r *Resolver) Join(raw, base string) string {
	if raw == "" {
		return r.HomeDir()
	}
	if filepath.IsAbs(raw) {
		return raw
	}
	if strings.HasSuffix(base, string(filepath.Separator)) {
		return base + raw
	}
	return base + string(filepath.Separator) + raw
}

// Resolve joins raw against base and verifies the result is an existing
// directory.
//
// Errors unwrap to ErrNotFound when the path does not exist, ErrNotADirectory
// when it exists but is not a directory, and otherwise carry the underlying
// OS error (permission denied, etc.).
func (r *Resolver) Resolve(raw, base string) (string, error) {
	resolved := r.Join(raw, base)

	// Error messages name the path the user typed; for an empty argument
	// that is the defaulted target.
	display := raw
	if display == "" {
		display = resolved
	}

	info, err := r.fs.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ResolveError{Path: display, Cause: ErrNotFound}
		}
		return "", &ResolveError{Path: display, Cause: err}
	}
	if !info.IsDir() {
		return "", &ResolveError{Path: display, Cause: ErrNotADirectory}
	}

	return resolved, nil
}

// Canonicalize resolves symlinks and dot segments in an already-resolved
// path. Used by the owned-directory tracking mode; the OS-managed mode never
// canonicalizes.
func (r *Resolver) Canonicalize(resolved string) (string, error) {
	canonical, err := r.fs.EvalSymlinks(resolved)
	if err != nil {
		return "", &ResolveError{Path: resolved, Cause: err}
	}
	return canonical, nil
}
