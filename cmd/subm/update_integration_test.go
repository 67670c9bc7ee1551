//go:build integration

package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestUpdateIntegration_CommitsNewCommits(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	addSubmoduleDirect(t, superPath, remote, "vendor/lib")
	advanceRemote(t, tmpDir, remote)
	t.Chdir(superPath)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newUpdateCmd()); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if got, want := lastCommitMessage(t, superPath), "Update submodules"; got != want {
		t.Errorf("commit message = %q, want %q", got, want)
	}
	if !isWorkTreeClean(t, superPath) {
		t.Error("work tree not clean after update")
	}

	subPath := filepath.Join(superPath, "vendor/lib")
	if got, want := headCommit(t, subPath), headCommit(t, remote); got != want {
		t.Errorf("submodule HEAD = %s, want remote HEAD %s", got, want)
	}

	if !strings.Contains(buf.String(), "committed submodule updates") {
		t.Errorf("output missing commit notice:\n%s", buf.String())
	}
}

func TestUpdateIntegration_AlreadyUpToDate(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	addSubmoduleDirect(t, superPath, remote, "vendor/lib")
	t.Chdir(superPath)

	before := headCommit(t, superPath)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newUpdateCmd()); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if !strings.Contains(buf.String(), "already up to date") {
		t.Errorf("output missing up-to-date notice:\n%s", buf.String())
	}
	if got := headCommit(t, superPath); got != before {
		t.Errorf("update committed despite no changes: %s -> %s", before, got)
	}
}

func TestUpdateIntegration_NoSubmodules(t *testing.T) {
	tmpDir := t.TempDir()
	superPath := setupSuperProject(t, tmpDir)
	t.Chdir(superPath)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newUpdateCmd()); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !strings.Contains(buf.String(), "no submodules configured") {
		t.Errorf("output missing no-submodules notice:\n%s", buf.String())
	}
}
