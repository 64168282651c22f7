package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsWorkTree returns true if git recognizes the given path as being inside
// a working tree. This is the status probe used to verify a repaired
// sub-project. rev-parse also succeeds inside a bare or metadata
// directory, printing false, so the answer matters, not just the exit
// code.
func IsWorkTree(ctx context.Context, path string) bool {
	out, err := outputGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(string(out)) == "true"
}
