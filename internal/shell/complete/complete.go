// Package complete lists directory entries matching a partially typed path.
package complete

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fileSystem is the filesystem subset the engine needs.
type fileSystem interface {
	ListDir(path string) ([]os.FileInfo, error)
}

// Engine builds completion candidates for partial path strings.
type Engine struct {
	fs fileSystem
}

// NewEngine creates a new completion engine.
func NewEngine(fs fileSystem) *Engine {
	if fs == nil {
		panic("fs is required")
	}
	return &Engine{fs: fs}
}

// Complete returns the candidates for partial, resolved relative to base,
// sorted lexicographically. Each candidate is a full path string rebuilt in
// the same prefix shape as partial, with a trailing separator appended when
// the entry is a directory. An unreadable directory yields no candidates.
func (e *Engine) Complete(partial, base string) []string {
	dirPart, namePrefix := split(partial)

	listPath := dirPart
	if !filepath.IsAbs(listPath) {
		listPath = filepath.Join(base, listPath)
	}

	entries, err := e.fs.ListDir(listPath)
	if err != nil {
		return nil
	}

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		if namePrefix != "" && !strings.HasPrefix(name, namePrefix) {
			continue
		}

		var candidate string
		switch {
		case dirPart == "." && !strings.HasSuffix(partial, sep()):
			// Current-directory case: bare name only.
			candidate = name
		case strings.HasSuffix(partial, sep()):
			// Trailing-separator case: append to the partial as typed.
			candidate = partial + name
		default:
			candidate = dirPart + sep() + name
		}

		if entry.IsDir() {
			candidate += sep()
		}
		candidates = append(candidates, candidate)
	}

	sort.Strings(candidates)
	return candidates
}

// split divides a partial path into its directory part and name prefix.
func split(partial string) (dirPart, namePrefix string) {
	switch {
	case strings.HasSuffix(partial, sep()):
		return partial, ""
	case partial == "":
		return ".", ""
	default:
		dir := filepath.Dir(partial)
		return dir, filepath.Base(partial)
	}
}

func sep() string {
	return string(filepath.Separator)
}
