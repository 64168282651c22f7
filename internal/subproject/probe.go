package subproject

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitsub/internal/git"
)

// Probe verifies that a directory is an operational git work tree.
type Probe interface {
	Verify(ctx context.Context, path string) error
}

// StructuralProbe validates the pointer file and the metadata layout it
// targets without spawning a subprocess.
type StructuralProbe struct {
	// MetadataDir is only used for error messages; the probe follows
	// whatever target the pointer names.
	MetadataDir string
}

// Verify checks that the pointer file resolves to a structurally valid
// metadata directory.
func (p StructuralProbe) Verify(_ context.Context, path string) error {
	pointer := filepath.Join(path, pointerName)
	data, err := os.ReadFile(pointer)
	if err != nil {
		return fmt.Errorf("read pointer: %w", err)
	}
	target, ok := strings.CutPrefix(strings.TrimSuffix(string(data), "\n"), "gitdir: ")
	if !ok || strings.ContainsRune(target, '\n') {
		return fmt.Errorf("%s is not a gitdir pointer file", pointer)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(path, target)
	}
	if err := validateMetadataDir(target); err != nil {
		return fmt.Errorf("metadata directory %s: %w", target, err)
	}
	return nil
}

// StatusProbe verifies a candidate by asking the git binary itself, the
// same check an end user's git invocation would perform.
type StatusProbe struct{}

// Verify runs the status probe inside path.
func (StatusProbe) Verify(ctx context.Context, path string) error {
	if !git.IsWorkTree(ctx, path) {
		return fmt.Errorf("git does not recognize %s as a work tree", path)
	}
	return nil
}
