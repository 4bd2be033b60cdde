// Package vcs clones remote repositories for analysis.
package vcs

import (
	"context"
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CloneOptions controls how a repository is fetched.
type CloneOptions struct {
	// Ref is a branch or tag name to check out. Empty means the remote
	// default branch.
	Ref string

	// Depth limits history. Zero means a depth of 1; analysis never needs
	// history.
	Depth int
}

// IsRemote reports whether the target looks like a clonable URL rather
// than a local path.
func IsRemote(target string) bool {
	return strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "git@") ||
		strings.HasPrefix(target, "ssh://")
}

// Clone fetches the repository into a temporary directory and returns its
// path plus a cleanup function. The cleanup must be called even when the
// subsequent analysis fails.
func Clone(ctx context.Context, url string, opts CloneOptions) (string, func(), error) {
	dir, err := os.MkdirTemp("", "debtguard-clone-*")
	if err != nil {
		return "", nil, fmt.Errorf("create clone dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	depth := opts.Depth
	if depth <= 0 {
		depth = 1
	}

	cloneOpts := &git.CloneOptions{
		URL:          url,
		Depth:        depth,
		SingleBranch: true,
	}
	if opts.Ref != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Ref)
	}

	if _, err := git.PlainCloneContext(ctx, dir, false, cloneOpts); err != nil {
		// A named ref may be a tag rather than a branch. Retry into a
		// clean directory.
		if opts.Ref != "" {
			os.RemoveAll(dir)
			if mkErr := os.MkdirAll(dir, 0o755); mkErr == nil {
				cloneOpts.ReferenceName = plumbing.NewTagReferenceName(opts.Ref)
				if _, tagErr := git.PlainCloneContext(ctx, dir, false, cloneOpts); tagErr == nil {
					return dir, cleanup, nil
				}
			}
		}
		cleanup()
		return "", nil, fmt.Errorf("clone %s: %w", url, err)
	}

	return dir, cleanup, nil
}
