//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRemoveIntegration_Force(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	addSubmoduleDirect(t, superPath, remote, "vendor/lib")
	t.Chdir(superPath)

	ctx, _ := testContext(t)
	if err := executeCommand(ctx, newRemoveCmd(), "vendor/lib", "--force"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	staged := runGitCommand(t, superPath, "git", "ls-files", "vendor/lib")
	if strings.TrimSpace(staged) != "" {
		t.Errorf("submodule still in index: %s", staged)
	}

	modulesDir := filepath.Join(superPath, ".git", "modules", "vendor/lib")
	if _, err := os.Stat(modulesDir); !os.IsNotExist(err) {
		t.Errorf("submodule metadata still present at %s", modulesDir)
	}
}

func TestRemoveIntegration_ConfirmedViaStdin(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	addSubmoduleDirect(t, superPath, remote, "vendor/lib")
	t.Chdir(superPath)
	withStdin(t, "y\n")

	ctx, _ := testContext(t)
	if err := executeCommand(ctx, newRemoveCmd(), "vendor/lib"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	staged := runGitCommand(t, superPath, "git", "ls-files", "vendor/lib")
	if strings.TrimSpace(staged) != "" {
		t.Errorf("submodule still in index: %s", staged)
	}
}

func TestRemoveIntegration_DeclinedViaStdin(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	addSubmoduleDirect(t, superPath, remote, "vendor/lib")
	t.Chdir(superPath)
	withStdin(t, "n\n")

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newRemoveCmd(), "vendor/lib"); err != nil {
		t.Fatalf("declined remove must not error: %v", err)
	}

	if !strings.Contains(buf.String(), "cancelled") {
		t.Errorf("output missing cancellation notice:\n%s", buf.String())
	}

	staged := runGitCommand(t, superPath, "git", "ls-files", "vendor/lib")
	if strings.TrimSpace(staged) == "" {
		t.Error("submodule was removed despite declined confirmation")
	}
}

func TestRemoveIntegration_UnknownFolder(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	addSubmoduleDirect(t, superPath, remote, "vendor/lib")
	t.Chdir(superPath)

	ctx, _ := testContext(t)
	err := executeCommand(ctx, newRemoveCmd(), "vendor/nope", "--force")
	if err == nil {
		t.Fatal("expected error for unknown submodule")
	}
}
