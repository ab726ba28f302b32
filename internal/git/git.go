package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// IsGitInstalled returns true if git is available on the system PATH.
func IsGitInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsInsideWorkTree reports whether dir is inside a git work tree. A
// subdirectory of an existing repository counts.
func IsInsideWorkTree(dir string) bool {
	out, err := outputQuiet(dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) == "true"
}

// Init runs git init in the given directory.
func Init(dir string) error {
	return runQuiet(dir, "init")
}

// runQuiet executes a git command without printing stdout.
// Stderr is captured and included in the error message on failure.
func runQuiet(dir string, args ...string) error {
	_, err := outputQuiet(dir, args...)
	return err
}

// outputQuiet executes a git command and returns its stdout without printing to the console.
func outputQuiet(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
