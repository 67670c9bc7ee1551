//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddIntegration(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	t.Chdir(superPath)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newAddCmd(), remote, "vendor/lib"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	gitmodules, err := os.ReadFile(filepath.Join(superPath, ".gitmodules"))
	if err != nil {
		t.Fatalf("failed to read .gitmodules: %v", err)
	}
	if !strings.Contains(string(gitmodules), "path = vendor/lib") {
		t.Errorf(".gitmodules does not list vendor/lib:\n%s", gitmodules)
	}

	if _, err := os.Stat(filepath.Join(superPath, "vendor/lib/README.md")); err != nil {
		t.Errorf("submodule not checked out: %v", err)
	}

	if !isWorkTreeClean(t, superPath) {
		t.Errorf("work tree not clean after add:\n%s",
			runGitCommand(t, superPath, "git", "status", "--porcelain"))
	}

	if got, want := lastCommitMessage(t, superPath), "Add submodule vendor/lib"; got != want {
		t.Errorf("commit message = %q, want %q", got, want)
	}

	if !strings.Contains(buf.String(), "vendor/lib") {
		t.Errorf("output does not mention submodule:\n%s", buf.String())
	}
}

func TestAddIntegration_InvalidURL(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	superPath := setupSuperProject(t, tmpDir)
	t.Chdir(superPath)

	ctx, _ := testContext(t)
	err := executeCommand(ctx, newAddCmd(), filepath.Join(tmpDir, "no-such-repo"), "vendor/missing")
	if err == nil {
		t.Fatal("expected error for nonexistent repository")
	}
}
