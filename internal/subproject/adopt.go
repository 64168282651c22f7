package subproject

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gitsub/internal/git"
)

// Adopt relocates the freshly created .git directory at dir to the
// convention name, writes the pointer file and verifies the result. This is
// the transition from an ordinary repository to a linked sub-project, used
// by both Clone and Create.
func Adopt(ctx context.Context, dir string, opts Options) error {
	meta := opts.metadataDir()
	gitDir := filepath.Join(dir, pointerName)
	metaPath := filepath.Join(dir, meta)

	info, err := os.Stat(gitDir)
	if err != nil {
		return fmt.Errorf("no repository at %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is already a pointer file", gitDir)
	}
	if pathExists(metaPath) {
		return fmt.Errorf("%s already exists", metaPath)
	}

	if err := os.Rename(gitDir, metaPath); err != nil {
		return fmt.Errorf("relocate metadata: %w", err)
	}
	if err := os.WriteFile(gitDir, []byte(PointerContent(meta)), 0o644); err != nil {
		return fmt.Errorf("write pointer: %w", err)
	}
	if err := opts.probe().Verify(ctx, dir); err != nil {
		return fmt.Errorf("verify %s: %w", dir, err)
	}
	return nil
}

// Clone clones url into target and leaves it in the linked state. The
// optional branch selects a ref other than the remote default. A target
// created by a failed clone is removed again; an existing non-empty target
// is refused up front.
func Clone(ctx context.Context, url, target, branch string, opts Options) error {
	if entries, err := os.ReadDir(target); err == nil && len(entries) > 0 {
		return fmt.Errorf("target %s already exists and is not empty", target)
	}
	existed := pathExists(target)

	if err := git.Clone(ctx, url, target, branch); err != nil {
		if !existed {
			os.RemoveAll(target)
		}
		return fmt.Errorf("clone %s: %w", url, err)
	}
	return Adopt(ctx, target, opts)
}

// Create converts an existing directory into a linked sub-project with all
// pre-existing files staged for a first commit (but not committed). An
// optional remote URL is configured as origin. Directories that already
// hold a repository or a metadata directory are refused.
func Create(ctx context.Context, dir, remote string, opts Options) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if pathExists(filepath.Join(dir, pointerName)) {
		return fmt.Errorf("%s already contains a repository", dir)
	}
	if pathExists(filepath.Join(dir, opts.metadataDir())) {
		return fmt.Errorf("%s already contains %s", dir, opts.metadataDir())
	}

	if err := git.Init(ctx, dir); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := Adopt(ctx, dir, opts); err != nil {
		return err
	}
	if err := git.StageAll(ctx, dir); err != nil {
		return fmt.Errorf("stage files: %w", err)
	}
	if remote != "" {
		if err := git.AddRemote(ctx, dir, "origin", remote); err != nil {
			return fmt.Errorf("add remote: %w", err)
		}
	}
	return nil
}
