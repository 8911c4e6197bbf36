package cmd

import (
	"deborg/src/internal/project"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestTargetsAddAndExtract(t *testing.T) {
	testChdir(t, t.TempDir())

	code, stdout, stderr := runCLI(t, "targets", "add", "Workstation", "Debian", "12", "--tags=desktop")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Added target workstation") {
		t.Fatalf("unexpected output: %q", stdout)
	}

	cfg, err := project.Load(project.FileName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := cfg.Targets["workstation"]
	if got.Distro != "Debian" || got.Release != "12" || !slices.Equal(got.Tags, []string{"desktop"}) {
		t.Fatalf("unexpected target: %+v", got)
	}

	orgFile := writeOrg(t, "+ base\n+ gui {Debian::desktop}, tui\n+ old {Debian:11}\n")
	code, stdout, stderr = runCLI(t, "--target", "workstation", orgFile)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if got := strings.TrimSpace(stdout); got != "base gui" {
		t.Fatalf("expected 'base gui', got %q", got)
	}

	code, stdout, _ = runCLI(t, "--target", "workstation", "--tags=server", orgFile)
	if code != 0 || strings.TrimSpace(stdout) != "base tui" {
		t.Fatalf("expected --tags to override target tags, got %d %q", code, stdout)
	}

	code, stdout, _ = runCLI(t, "targets", "list")
	if code != 0 || !strings.Contains(stdout, "workstation") || !strings.Contains(stdout, "Debian") {
		t.Fatalf("unexpected list output: %d %q", code, stdout)
	}
}

func TestTargetUsesOrgFileFromProject(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	cfg := project.NewDefault()
	cfg.Org.File = "packages.org"
	cfg.Targets["server"] = project.TargetConfig{Distro: "Ubuntu", Release: "24.04", Tags: []string{"server"}}
	if err := project.Save(filepath.Join(dir, project.FileName), cfg); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "packages.org"), []byte("+ apache {::server}\n+ vim {Ubuntu}, vim-nox {Debian}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, "--target", "server")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if got := strings.TrimSpace(stdout); got != "apache vim" {
		t.Fatalf("expected 'apache vim', got %q", got)
	}
}

func TestUnknownTargetFails(t *testing.T) {
	testChdir(t, t.TempDir())
	if code, _, _ := runCLI(t, "targets", "add", "laptop", "Debian", "12"); code != 0 {
		t.Fatalf("could not add target, exit %d", code)
	}
	code, _, stderr := runCLI(t, "--target", "desktop", "file.org")
	if code != 1 || !strings.Contains(stderr, `target "desktop" is not defined`) {
		t.Fatalf("unexpected result: %d %q", code, stderr)
	}
}

func TestTargetsListWithoutProjectFile(t *testing.T) {
	testChdir(t, t.TempDir())
	code, stdout, _ := runCLI(t, "targets", "list")
	if code != 0 || !strings.Contains(stdout, "No "+project.FileName) {
		t.Fatalf("unexpected result: %d %q", code, stdout)
	}
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore dir: %v", err)
		}
	})
}
