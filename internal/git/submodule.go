package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GitmodulesFile is the submodule configuration file at the repo root.
const GitmodulesFile = ".gitmodules"

// AddSubmodule registers folder as a submodule tracking url.
func AddSubmodule(ctx context.Context, dir, url, folder string) error {
	if err := runGit(ctx, dir, "submodule", "add", url, folder); err != nil {
		return fmt.Errorf("git submodule add: %v", err)
	}
	return nil
}

// UpdateSubmodulesRemote fetches the latest remote commits for submodules
// and integrates them into the checked out state. With no paths all
// submodules are updated. Rebase selects --rebase instead of --merge.
func UpdateSubmodulesRemote(ctx context.Context, dir string, rebase bool, paths ...string) error {
	args := []string{"submodule", "update", "--remote"}
	if rebase {
		args = append(args, "--rebase")
	} else {
		args = append(args, "--merge")
	}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	if err := runGit(ctx, dir, args...); err != nil {
		return fmt.Errorf("git submodule update --remote: %v", err)
	}
	return nil
}

// InitSubmodules initializes the submodule configuration (first-clone bootstrap).
func InitSubmodules(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "submodule", "init"); err != nil {
		return fmt.Errorf("git submodule init: %v", err)
	}
	return nil
}

// CheckoutSubmodules checks out the commit recorded in the superproject
// for each submodule.
func CheckoutSubmodules(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "submodule", "update"); err != nil {
		return fmt.Errorf("git submodule update: %v", err)
	}
	return nil
}

// SubmoduleStatus returns the pointer status of all submodules
// (`git submodule status` output, one line per submodule).
func SubmoduleStatus(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "submodule", "status")
	if err != nil {
		return "", fmt.Errorf("git submodule status: %v", err)
	}
	return string(output), nil
}

// DeinitSubmodule unregisters the submodule's working copy.
func DeinitSubmodule(ctx context.Context, dir, folder string) error {
	if err := runGit(ctx, dir, "submodule", "deinit", "-f", "--", folder); err != nil {
		return fmt.Errorf("git submodule deinit: %v", err)
	}
	return nil
}

// RemoveFromIndex removes the submodule folder from the index and work tree.
func RemoveFromIndex(ctx context.Context, dir, folder string) error {
	if err := runGit(ctx, dir, "rm", "-f", "--", folder); err != nil {
		return fmt.Errorf("git rm: %v", err)
	}
	return nil
}

// RemoveSubmoduleMetadata deletes the submodule's internal metadata
// directory under .git/modules. Must run after deinit and index removal.
func RemoveSubmoduleMetadata(ctx context.Context, dir, folder string) error {
	moduleDir, err := SubmoduleGitDir(ctx, dir, folder)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(moduleDir); err != nil {
		return fmt.Errorf("remove submodule metadata: %w", err)
	}
	return nil
}

// ListSubmodulePaths returns the configured submodule folders, read via
// git config from the .gitmodules file. A missing file or a file without
// entries yields an empty list.
func ListSubmodulePaths(ctx context.Context, dir string) ([]string, error) {
	top, err := TopLevel(ctx, dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(filepath.Join(top, GitmodulesFile)); err != nil {
		return nil, nil
	}

	output, err := outputGit(ctx, top, "config", "--file", GitmodulesFile, "--get-regexp", `^submodule\..*\.path$`)
	if err != nil {
		// git config exits 1 when the file has no submodule entries
		return nil, nil
	}
	return parseSubmodulePaths(output), nil
}

// parseSubmodulePaths extracts folder names from
// `git config --get-regexp '^submodule\..*\.path$'` output.
// Each line has the form "submodule.<name>.path <folder>".
func parseSubmodulePaths(output []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		_, folder, found := strings.Cut(line, " ")
		if !found || folder == "" {
			continue
		}
		paths = append(paths, folder)
	}
	return paths
}

// HasSubmodule reports whether folder is a configured submodule.
func HasSubmodule(ctx context.Context, dir, folder string) (bool, error) {
	paths, err := ListSubmodulePaths(ctx, dir)
	if err != nil {
		return false, err
	}
	folder = filepath.Clean(folder)
	for _, p := range paths {
		if filepath.Clean(p) == folder {
			return true, nil
		}
	}
	return false, nil
}
