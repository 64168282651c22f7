// Package subproject implements nested sub-project repositories: a
// directory inside a parent repository's working tree that is itself an
// independent git repository, linked through a gitdir pointer file.
//
// The sub-project's real metadata lives in a convention-named sibling
// directory (tracked by the parent repo); a one-line pointer file at the
// standard .git name redirects git to it. A fresh clone of the parent keeps
// the metadata directory but strips the pointer file, leaving the
// sub-project unlinked until the linker repairs it.
package subproject

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultMetadataDir is the convention name for the relocated metadata
	// directory.
	DefaultMetadataDir = ".git-sub-project"

	// pointerName is the standard name git resolves, occupied here by a
	// regular file instead of a directory.
	pointerName = ".git"
)

// PointerContent returns the exact pointer file content for a metadata
// directory name. Git requires the single gitdir line.
func PointerContent(metadataDir string) string {
	return "gitdir: " + metadataDir + "\n"
}

// Outcome classifies the result of linking a single candidate directory.
type Outcome int

const (
	// Linked means the pointer was written and verified. From Classify it
	// means the candidate is linkable.
	Linked Outcome = iota

	// AlreadyLinked means the pointer is present with the expected content.
	// An idempotent no-op, not an error.
	AlreadyLinked

	// NotFound means the path does not exist or is not a directory.
	NotFound

	// NoMetadata means no convention-named metadata directory exists at the
	// path, so there is nothing to link.
	NoMetadata

	// Invalid means the metadata directory exists but is missing the
	// minimum structure of a real git metadata directory.
	Invalid

	// Blocked means a real .git directory occupies the pointer name. An
	// operational repository is never overwritten.
	Blocked

	// Conflict means a pointer file exists with unexpected content. It may
	// intentionally point elsewhere and is never rewritten.
	Conflict

	// VerifyFailed means the pointer was written but the post-write probe
	// failed. The pointer is left in place for inspection.
	VerifyFailed
)

func (o Outcome) String() string {
	switch o {
	case Linked:
		return "linked"
	case AlreadyLinked:
		return "already linked"
	case NotFound:
		return "not found"
	case NoMetadata:
		return "no metadata directory"
	case Invalid:
		return "invalid metadata directory"
	case Blocked:
		return "blocked by real .git directory"
	case Conflict:
		return "pointer conflict"
	case VerifyFailed:
		return "verification failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Failure reports whether the outcome counts against the process exit code.
func (o Outcome) Failure() bool {
	switch o {
	case Linked, AlreadyLinked:
		return false
	}
	return true
}

// Result is the outcome of classifying or linking one candidate.
type Result struct {
	Path    string
	Outcome Outcome
	Detail  string // extra context for failures
}

// Options configures the linker and the discovery engine.
type Options struct {
	// MetadataDir is the convention name of the metadata directory.
	// DefaultMetadataDir when empty.
	MetadataDir string

	// Probe verifies a candidate after its pointer is written.
	// A StructuralProbe when nil.
	Probe Probe

	// DryRun classifies without writing or probing.
	DryRun bool

	// SkipDirs lists directory names discovery never descends into.
	SkipDirs []string
}

func (o Options) metadataDir() string {
	if o.MetadataDir != "" {
		return o.MetadataDir
	}
	return DefaultMetadataDir
}

func (o Options) probe() Probe {
	if o.Probe != nil {
		return o.Probe
	}
	return StructuralProbe{MetadataDir: o.metadataDir()}
}

// minimum structure of a real git metadata directory
var metadataEntries = []struct {
	name string
	dir  bool
}{
	{"objects", true},
	{"refs", true},
	{"HEAD", false},
	{"config", false},
}

// validateMetadataDir checks that dir has the minimum layout of a git
// metadata directory: an object store, a reference namespace, a HEAD
// reference and a configuration file.
func validateMetadataDir(dir string) error {
	for _, e := range metadataEntries {
		info, err := os.Stat(filepath.Join(dir, e.name))
		if err != nil {
			return fmt.Errorf("missing %s", e.name)
		}
		if info.IsDir() != e.dir {
			return fmt.Errorf("%s has the wrong type", e.name)
		}
	}
	return nil
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
