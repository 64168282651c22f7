package git

import (
	"context"
)

// Clone clones url into target. A non-empty branch is checked out instead
// of the remote default.
func Clone(ctx context.Context, url, target, branch string) error {
	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, "--", url, target)
	return runGit(ctx, "", args...)
}

// Init initializes a new repository in dir.
func Init(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "init")
}

// StageAll stages every file in dir for the next commit.
func StageAll(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "add", "-A")
}

// AddRemote configures a named remote in dir.
func AddRemote(ctx context.Context, dir, name, url string) error {
	return runGit(ctx, dir, "remote", "add", name, url)
}
