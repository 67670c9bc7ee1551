package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// TopLevel returns the root directory of the work tree containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// GitDir returns the absolute path of the repository's .git directory.
// Submodule metadata lives under <gitdir>/modules/<name>.
func GitDir(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("resolve git dir: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// SubmoduleGitDir returns the internal metadata directory for a submodule.
func SubmoduleGitDir(ctx context.Context, dir, folder string) (string, error) {
	gitDir, err := GitDir(ctx, dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "modules", folder), nil
}

// HasChanges reports whether the work tree has any uncommitted changes
// in the given paths. With no paths the whole work tree is checked.
func HasChanges(ctx context.Context, dir string, paths ...string) (bool, error) {
	args := []string{"status", "--porcelain"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	output, err := outputGit(ctx, dir, args...)
	if err != nil {
		return false, fmt.Errorf("git status: %v", err)
	}
	return strings.TrimSpace(string(output)) != "", nil
}

// Stage adds the given paths to the index.
func Stage(ctx context.Context, dir string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	if err := runGit(ctx, dir, args...); err != nil {
		return fmt.Errorf("git add: %v", err)
	}
	return nil
}

// Commit records the staged changes with the given message.
func Commit(ctx context.Context, dir, message string) error {
	if err := runGit(ctx, dir, "commit", "-m", message); err != nil {
		return fmt.Errorf("git commit: %v", err)
	}
	return nil
}

// Push pushes the repository at dir to its default remote.
func Push(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "push"); err != nil {
		return fmt.Errorf("git push: %v", err)
	}
	return nil
}

// StatusShort returns `git status --short` output for the repo at dir.
func StatusShort(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "status", "--short")
	if err != nil {
		return "", fmt.Errorf("git status: %v", err)
	}
	return string(output), nil
}
