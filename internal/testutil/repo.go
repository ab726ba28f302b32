package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// IsolateGit stops git from discovering repositories above ceiling, so
// temp directories are never mistaken for part of an enclosing checkout.
func IsolateGit(t *testing.T, ceiling string) {
	t.Helper()
	t.Setenv("GIT_CEILING_DIRECTORIES", ceiling)
}

// CreateRepo creates a git repository with an initial commit in a temp directory.
// Returns the path to the work tree.
func CreateRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	IsolateGit(t, filepath.Dir(dir))

	work := filepath.Join(dir, "repo")
	run(t, dir, "git", "init", "-b", "main", work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")

	WriteFile(t, filepath.Join(work, "README.md"), "# test\n")
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", "initial commit")
	return work
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
