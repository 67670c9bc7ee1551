//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/config"
	"github.com/subm/subm/internal/log"
	"github.com/subm/subm/internal/output"
)

// testContext returns a context carrying a discarding logger and a
// printer writing into the returned buffer. Also resets the shared
// config to defaults.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	c := config.Default()
	cfg = &c

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &buf)
	return ctx, &buf
}

// executeCommand runs a command with the given args and returns its error.
func executeCommand(ctx context.Context, cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(ctx)
}

// allowFileProtocol permits file:// submodule clones for all git child
// processes spawned during the test. Recent git rejects local-path
// submodules without it.
func allowFileProtocol(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_CONFIG_COUNT", "1")
	t.Setenv("GIT_CONFIG_KEY_0", "protocol.file.allow")
	t.Setenv("GIT_CONFIG_VALUE_0", "always")
}

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCommand runs a git command and returns its combined output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupRepo creates a git repo with an initial commit in dir/name.
func setupRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	cmds := [][]string{
		{"git", "init", "-b", "main"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
	}
	for _, args := range cmds {
		runGitCommand(t, repoPath, args...)
	}

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")

	return repoPath
}

// setupRemote creates a bare repository seeded with one commit on main
// and returns its path, usable as a submodule source URL.
func setupRemote(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	workPath := setupRepo(t, dir, name+"-seed")
	barePath := filepath.Join(dir, name+".git")
	runGitCommand(t, dir, "git", "clone", "--bare", workPath, barePath)

	return barePath
}

// setupSuperProject creates a repo with a bare origin so pushes work.
func setupSuperProject(t *testing.T, dir string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := setupRepo(t, dir, "super")
	barePath := filepath.Join(dir, "super-origin.git")
	runGitCommand(t, dir, "git", "clone", "--bare", repoPath, barePath)
	runGitCommand(t, repoPath, "git", "remote", "add", "origin", barePath)
	runGitCommand(t, repoPath, "git", "fetch", "origin")
	runGitCommand(t, repoPath, "git", "branch", "--set-upstream-to=origin/main", "main")

	return repoPath
}

// addSubmoduleDirect registers a submodule without going through subm,
// checks out its main branch (so --remote --merge works), and commits.
func addSubmoduleDirect(t *testing.T, superPath, url, folder string) {
	t.Helper()

	runGitCommand(t, superPath, "git", "submodule", "add", url, folder)
	runGitCommand(t, filepath.Join(superPath, folder), "git", "checkout", "main")
	runGitCommand(t, superPath, "git", "commit", "-m", "Add "+folder)
}

// advanceRemote adds a commit to the bare remote via a scratch clone.
func advanceRemote(t *testing.T, dir, barePath string) {
	t.Helper()

	dir = resolvePath(t, dir)
	clonePath := filepath.Join(dir, "advance-clone")
	runGitCommand(t, dir, "git", "clone", barePath, clonePath)
	runGitCommand(t, clonePath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, clonePath, "git", "config", "user.name", "Test User")

	filePath := filepath.Join(clonePath, "update.txt")
	if err := os.WriteFile(filePath, []byte("new content\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	runGitCommand(t, clonePath, "git", "add", "update.txt")
	runGitCommand(t, clonePath, "git", "commit", "-m", "Remote update")
	runGitCommand(t, clonePath, "git", "push", "origin", "main")

	if err := os.RemoveAll(clonePath); err != nil {
		t.Fatalf("failed to clean up clone: %v", err)
	}
}

// headCommit returns the HEAD commit hash of the repo at dir.
func headCommit(t *testing.T, dir string) string {
	t.Helper()
	return strings.TrimSpace(runGitCommand(t, dir, "git", "rev-parse", "HEAD"))
}

// lastCommitMessage returns the subject of the last commit at dir.
func lastCommitMessage(t *testing.T, dir string) string {
	t.Helper()
	return strings.TrimSpace(runGitCommand(t, dir, "git", "log", "-1", "--pretty=%s"))
}

// isWorkTreeClean reports whether the repo at dir has no uncommitted changes.
func isWorkTreeClean(t *testing.T, dir string) bool {
	t.Helper()
	return strings.TrimSpace(runGitCommand(t, dir, "git", "status", "--porcelain")) == ""
}

// withStdin replaces os.Stdin with a pipe fed from input for the
// duration of the test, so confirmation prompts read scripted answers.
func withStdin(t *testing.T, input string) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	if _, err := w.WriteString(input); err != nil {
		t.Fatalf("failed to write stdin input: %v", err)
	}
	w.Close()

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		r.Close()
	})
}
