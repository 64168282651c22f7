package subproject

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func outcomesByPath(results []Result) map[string]Outcome {
	m := make(map[string]Outcome, len(results))
	for _, r := range results {
		m[r.Path] = r.Outcome
	}
	return m
}

func TestDiscover_MixedDepths(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	a := newCandidate(t, root, "a")
	b := newCandidate(t, filepath.Join(root, "x", "y"), "b")
	c := newCandidate(t, filepath.Join(root, "x", "y", "z", "w"), "c")

	results, err := Discover(context.Background(), root, structOpts())
	if err != nil {
		t.Fatalf("Discover = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Discover found %d candidates, want 3", len(results))
	}
	got := outcomesByPath(results)
	for _, dir := range []string{a, b, c} {
		if got[dir] != Linked {
			t.Errorf("candidate %s = %s, want linked", dir, got[dir])
		}
	}
}

func TestDiscover_EmptyTreeIsSuccess(t *testing.T) {
	t.Parallel()

	results, err := Discover(context.Background(), t.TempDir(), structOpts())
	if err != nil {
		t.Fatalf("Discover = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Discover found %d candidates in empty tree, want 0", len(results))
	}
}

func TestDiscover_MissingRootFails(t *testing.T) {
	t.Parallel()

	_, err := Discover(context.Background(), filepath.Join(t.TempDir(), "gone"), structOpts())
	if err == nil {
		t.Error("Discover(missing root) = nil, want error")
	}
}

func TestDiscover_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	good1 := newCandidate(t, root, "good1")
	good2 := newCandidate(t, root, "good2")

	blocked := newCandidate(t, root, "blocked")
	if err := os.MkdirAll(filepath.Join(blocked, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	results, err := Discover(context.Background(), root, structOpts())
	if err != nil {
		t.Fatalf("Discover = %v", err)
	}
	got := outcomesByPath(results)
	if got[blocked] != Blocked {
		t.Errorf("blocked candidate = %s, want blocked", got[blocked])
	}
	// one candidate's failure never stops the siblings
	for _, dir := range []string{good1, good2} {
		if got[dir] != Linked {
			t.Errorf("candidate %s = %s, want linked", dir, got[dir])
		}
	}
}

func TestDiscover_SkipsMetadataInternals(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	lib := newCandidate(t, root, "lib")
	// a decoy candidate buried inside the metadata directory must not be
	// treated as a user directory
	decoy := filepath.Join(lib, DefaultMetadataDir, "modules", "inner")
	if err := os.MkdirAll(decoy, 0o755); err != nil {
		t.Fatal(err)
	}
	writeMetadata(t, decoy, DefaultMetadataDir)

	results, err := Discover(context.Background(), root, structOpts())
	if err != nil {
		t.Fatalf("Discover = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Discover found %d candidates, want 1 (decoy inside metadata scanned)", len(results))
	}
	if results[0].Path != lib {
		t.Errorf("candidate = %s, want %s", results[0].Path, lib)
	}
}

func TestDiscover_NestedSubProjectsAreIndependent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outer := newCandidate(t, root, "outer")
	inner := newCandidate(t, outer, "inner")

	results, err := Discover(context.Background(), root, structOpts())
	if err != nil {
		t.Fatalf("Discover = %v", err)
	}
	got := outcomesByPath(results)
	if got[outer] != Linked || got[inner] != Linked {
		t.Errorf("nested candidates = %v, want both linked", got)
	}
}

func TestDiscover_SkipDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	kept := newCandidate(t, root, "kept")
	newCandidate(t, filepath.Join(root, "node_modules", "pkg"), "skipped")

	opts := structOpts()
	opts.SkipDirs = []string{"node_modules"}

	results, err := Discover(context.Background(), root, opts)
	if err != nil {
		t.Fatalf("Discover = %v", err)
	}
	if len(results) != 1 || results[0].Path != kept {
		t.Errorf("Discover with skip_dirs = %v, want only %s", outcomesByPath(results), kept)
	}
}

func TestDiscover_AlreadyLinkedReportedAsSuccess(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := newCandidate(t, root, "lib")
	if res := Link(context.Background(), dir, structOpts()); res.Outcome != Linked {
		t.Fatalf("setup Link = %s", res.Outcome)
	}

	results, err := Discover(context.Background(), root, structOpts())
	if err != nil {
		t.Fatalf("Discover = %v", err)
	}
	if len(results) != 1 || results[0].Outcome != AlreadyLinked {
		t.Errorf("second pass results = %v, want one already linked", results)
	}
}

func TestDiscover_CancelledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	newCandidate(t, root, "lib")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Discover(ctx, root, structOpts()); err == nil {
		t.Error("Discover with cancelled context = nil, want error")
	}
}
