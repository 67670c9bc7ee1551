package git

import (
	"context"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNotARepo indicates the working directory is not inside a git work tree
var ErrNotARepo = fmt.Errorf("not inside a git repository")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if the current working directory is inside a git repository
func IsInsideRepo(ctx context.Context) bool {
	err := runGit(ctx, "", "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// EnsureRepo returns ErrNotARepo if the current working directory is not
// inside a git work tree. Every submodule command checks this before
// dispatching.
func EnsureRepo(ctx context.Context) error {
	if !IsInsideRepo(ctx) {
		return ErrNotARepo
	}
	return nil
}
