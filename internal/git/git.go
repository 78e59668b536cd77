package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// CloneOpts configures a git clone operation.
type CloneOpts struct {
	// Depth limits history depth; 0 means full history.
	Depth int
	// Ref is the branch or tag to clone; empty clones the default branch.
	Ref string
}

// Clone clones a repository to dest with the given options. Git's stderr
// is captured and included in the error on failure.
func Clone(url, dest string, opts CloneOpts) error {
	args := []string{"clone"}
	if opts.Depth > 0 {
		args = append(args, "--depth", fmt.Sprintf("%d", opts.Depth))
	}
	if opts.Ref != "" {
		args = append(args, "--branch", opts.Ref)
	}
	args = append(args, url, dest)

	if err := runQuiet(".", args...); err != nil {
		return fmt.Errorf("cloning %s: %w", url, err)
	}
	return nil
}

// HeadCommit returns the full SHA of HEAD.
func HeadCommit(repoDir string) (string, error) {
	out, err := outputQuiet(repoDir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsGitInstalled returns true if git is available on the system PATH.
func IsGitInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// runQuiet executes a git command without printing stdout.
// Stderr is captured and included in the error message on failure.
func runQuiet(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return nil
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
