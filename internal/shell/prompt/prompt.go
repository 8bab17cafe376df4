// Package prompt renders the input prompt shown before each command.
package prompt

import (
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

// BranchFinder looks up the checked-out git branch for a directory.
type BranchFinder interface {
	Branch(dir string) (string, bool)
}

// GitBranchFinder detects the branch with go-git, walking up to the nearest
// enclosing repository.
type GitBranchFinder struct{}

func (GitBranchFinder) Branch(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	head, err := repo.Head()
	if err != nil {
		// Unborn HEAD (no commits yet) or detached state we can't name.
		return "", false
	}
	if !head.Name().IsBranch() {
		return "", false
	}
	return head.Name().Short(), true
}

// NoBranchFinder never reports a branch; used when the decoration is
// disabled in config.
type NoBranchFinder struct{}

func (NoBranchFinder) Branch(string) (string, bool) { return "", false }

// Render builds the prompt for a current directory: the directory's
// basename, the branch in parentheses when one is found, and a "> " tail.
// An unknown directory renders as "?".
func Render(cwd string, finder BranchFinder) string {
	name := "?"
	if cwd != "" && cwd != "?" {
		name = filepath.Base(cwd)
	}
	if branch, ok := finder.Branch(cwd); ok {
		return fmt.Sprintf("%s (%s)> ", name, branch)
	}
	return fmt.Sprintf("%s> ", name)
}
