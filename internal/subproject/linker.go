package subproject

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Classify determines the linkage state of path without mutating anything.
// A Linked outcome from Classify means the candidate is linkable: the
// metadata directory is structurally valid and no pointer file exists yet.
func Classify(path string, opts Options) Result {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return Result{Path: path, Outcome: NotFound}
	}

	meta := opts.metadataDir()
	pointer := filepath.Join(path, pointerName)

	// A real .git directory means an operational ordinary repository.
	if info, err := os.Stat(pointer); err == nil && info.IsDir() {
		return Result{Path: path, Outcome: Blocked}
	}

	metaPath := filepath.Join(path, meta)
	minfo, err := os.Stat(metaPath)
	if err != nil || !minfo.IsDir() {
		return Result{Path: path, Outcome: NoMetadata}
	}
	if err := validateMetadataDir(metaPath); err != nil {
		return Result{Path: path, Outcome: Invalid, Detail: err.Error()}
	}

	data, err := os.ReadFile(pointer)
	switch {
	case err == nil:
		if string(data) == PointerContent(meta) {
			return Result{Path: path, Outcome: AlreadyLinked}
		}
		return Result{
			Path:    path,
			Outcome: Conflict,
			Detail:  fmt.Sprintf("pointer contains %q", strings.TrimSpace(string(data))),
		}
	case os.IsNotExist(err):
		return Result{Path: path, Outcome: Linked}
	default:
		// the pointer exists but cannot be read; its content is
		// unverifiable, so it gets the same hands-off treatment as a
		// divergent pointer
		return Result{Path: path, Outcome: Conflict, Detail: "read pointer: " + err.Error()}
	}
}

// Link classifies path and, when it is an unlinked sub-project, writes the
// pointer file and verifies the repair with the configured probe.
//
// Link never touches a Blocked or Conflict candidate, and never removes a
// pointer it wrote: on probe failure the file stays in place so the state
// can be inspected.
func Link(ctx context.Context, path string, opts Options) Result {
	res := Classify(path, opts)
	if res.Outcome != Linked || opts.DryRun {
		return res
	}

	meta := opts.metadataDir()
	pointer := filepath.Join(path, pointerName)
	if err := os.WriteFile(pointer, []byte(PointerContent(meta)), 0o644); err != nil {
		return Result{Path: path, Outcome: VerifyFailed, Detail: "write pointer: " + err.Error()}
	}
	if err := opts.probe().Verify(ctx, path); err != nil {
		return Result{Path: path, Outcome: VerifyFailed, Detail: err.Error()}
	}
	return Result{Path: path, Outcome: Linked}
}
