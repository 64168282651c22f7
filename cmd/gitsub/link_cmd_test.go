package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitsub/internal/config"
	"gitsub/internal/log"
	"gitsub/internal/output"
)

// writeCandidate creates dir with a valid metadata directory and no pointer.
func writeCandidate(t *testing.T, dir string) {
	t.Helper()
	meta := filepath.Join(dir, ".git-sub-project")
	for _, sub := range []string{"objects", "refs"} {
		if err := os.MkdirAll(filepath.Join(meta, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for name, content := range map[string]string{
		"HEAD":   "ref: refs/heads/main\n",
		"config": "",
	} {
		if err := os.WriteFile(filepath.Join(meta, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// runLink executes the link command in-process.
func runLink(t *testing.T, args ...string) (string, error) {
	t.Helper()

	oldCfg := cfg
	t.Cleanup(func() { cfg = oldCfg })
	c := config.Default()
	c.Probe = config.ProbeStructural
	cfg = &c

	cmd := newLinkCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))

	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestLinkCmd_SinglePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lib")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeCandidate(t, dir)

	out, err := runLink(t, dir)
	if err != nil {
		t.Fatalf("link %s = %v, want nil", dir, err)
	}
	if !strings.Contains(out, "linked") {
		t.Errorf("output = %q, want a linked line", out)
	}

	data, readErr := os.ReadFile(filepath.Join(dir, ".git"))
	if readErr != nil {
		t.Fatalf("pointer not written: %v", readErr)
	}
	if string(data) != "gitdir: .git-sub-project\n" {
		t.Errorf("pointer content = %q", data)
	}
}

func TestLinkCmd_SinglePathWithoutMetadataFails(t *testing.T) {
	dir := t.TempDir()

	_, err := runLink(t, dir)
	if err == nil {
		t.Error("link on a plain directory = nil, want error")
	}
}

func TestLinkCmd_AllLinksEverythingDespiteFailures(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", filepath.Join("x", "b")} {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeCandidate(t, dir)
	}
	blocked := filepath.Join(root, "blocked")
	if err := os.MkdirAll(filepath.Join(blocked, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeCandidate(t, blocked)

	out, err := runLink(t, "--all", root)
	// the blocked candidate must fail the run as a whole
	if err == nil {
		t.Fatal("link --all with blocked candidate = nil, want error")
	}
	// but the linkable ones must still have been repaired
	for _, name := range []string{"a", filepath.Join("x", "b")} {
		pointer := filepath.Join(root, name, ".git")
		if _, statErr := os.Stat(pointer); statErr != nil {
			t.Errorf("candidate %s not linked: %v", name, statErr)
		}
	}
	if !strings.Contains(out, "2 linked") || !strings.Contains(out, "1 failed") {
		t.Errorf("summary missing from output %q", out)
	}
}

func TestLinkCmd_AllEmptyTreeSucceeds(t *testing.T) {
	out, err := runLink(t, "--all", t.TempDir())
	if err != nil {
		t.Fatalf("link --all on empty tree = %v, want nil", err)
	}
	if !strings.Contains(out, "No sub-projects found") {
		t.Errorf("output = %q, want nothing-to-do message", out)
	}
}

func TestLinkCmd_DryRunWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lib")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeCandidate(t, dir)

	out, err := runLink(t, "--dry-run", dir)
	if err != nil {
		t.Fatalf("link --dry-run = %v, want nil", err)
	}
	if !strings.Contains(out, "would link") {
		t.Errorf("output = %q, want would-link line", out)
	}
	if _, statErr := os.Stat(filepath.Join(dir, ".git")); statErr == nil {
		t.Error("dry run wrote a pointer file")
	}
}
