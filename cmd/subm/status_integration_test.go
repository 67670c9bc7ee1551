//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatusIntegration_Clean(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	addSubmoduleDirect(t, superPath, remote, "vendor/lib")
	t.Chdir(superPath)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newStatusCmd()); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "vendor/lib") {
		t.Errorf("output does not list submodule:\n%s", out)
	}
	if !strings.Contains(out, "clean") {
		t.Errorf("output missing clean marker:\n%s", out)
	}
}

func TestStatusIntegration_Dirty(t *testing.T) {
	allowFileProtocol(t)

	tmpDir := t.TempDir()
	remote := setupRemote(t, tmpDir, "lib")
	superPath := setupSuperProject(t, tmpDir)
	addSubmoduleDirect(t, superPath, remote, "vendor/lib")

	scratch := filepath.Join(superPath, "vendor/lib", "scratch.txt")
	if err := os.WriteFile(scratch, []byte("local change\n"), 0644); err != nil {
		t.Fatalf("failed to dirty submodule: %v", err)
	}
	t.Chdir(superPath)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newStatusCmd()); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	if !strings.Contains(buf.String(), "scratch.txt") {
		t.Errorf("output does not show dirty file:\n%s", buf.String())
	}
}

func TestStatusIntegration_NoSubmodules(t *testing.T) {
	tmpDir := t.TempDir()
	superPath := setupSuperProject(t, tmpDir)
	t.Chdir(superPath)

	ctx, buf := testContext(t)
	if err := executeCommand(ctx, newStatusCmd()); err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(buf.String(), "no submodules configured") {
		t.Errorf("output missing no-submodules notice:\n%s", buf.String())
	}
}
