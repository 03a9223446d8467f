// Package workspace resolves report paths relative to the enclosing git
// worktree, so the CLI behaves the same from any subdirectory of a checkout.
package workspace

import (
	"fmt"
	"log/slog"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// GitRoot returns the worktree root of the repository containing dir.
func GitRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repository from %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("resolving worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// Resolver maps configured paths to filesystem paths.
type Resolver struct {
	base string
}

// NewResolver returns a Resolver that leaves paths untouched unless
// useGitRoot is set, in which case relative paths are anchored at the git
// worktree containing dir.
func NewResolver(dir string, useGitRoot bool) (*Resolver, error) {
	if !useGitRoot {
		return &Resolver{}, nil
	}
	root, err := GitRoot(dir)
	if err != nil {
		return nil, err
	}
	slog.Debug("Resolving report paths from git root", "root", root)
	return &Resolver{base: root}, nil
}

// Resolve returns path anchored at the resolver's base. Absolute paths and
// resolvers without a base return path unchanged.
func (r *Resolver) Resolve(path string) string {
	if r == nil || r.base == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.base, path)
}
