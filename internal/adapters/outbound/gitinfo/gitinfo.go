// Package gitinfo resolves repository metadata for validated documents.
package gitinfo

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.RepoInspector using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// CommitHash returns the HEAD commit of the repository containing path.
// The search walks upward from the file's directory, so documents deep
// inside a working tree are stamped with their repo's commit. A path
// outside any repository is not an error.
func (g *GitInfoAdapter) CommitHash(path string) (string, bool) {
	dir := path
	if fi, err := os.Stat(path); err != nil || !fi.IsDir() {
		dir = filepath.Dir(path)
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}

	head, err := repo.Head()
	if err != nil {
		return "", false
	}

	return head.Hash().String(), true
}
