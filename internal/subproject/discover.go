package subproject

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// Discover walks the tree rooted at root and applies Link to every
// directory containing the convention-named metadata directory, at any
// depth. One candidate's failure never aborts the traversal; results come
// back in walk order keyed by path. Nested sub-projects are independent
// candidates.
//
// The walk never descends into metadata directories or real .git
// directories, and skips any directory name listed in Options.SkipDirs.
// Only an unreadable root aborts the walk.
func Discover(ctx context.Context, root string, opts Options) ([]Result, error) {
	meta := opts.metadataDir()
	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, name := range opts.SkipDirs {
		skip[name] = true
	}

	var results []Result
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// unreadable subtree: the walk cannot descend anyway
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.IsDir() {
			return nil
		}
		if path != root {
			name := d.Name()
			if name == meta || name == pointerName || skip[name] {
				return fs.SkipDir
			}
		}
		if info, statErr := os.Stat(filepath.Join(path, meta)); statErr == nil && info.IsDir() {
			results = append(results, Link(ctx, path, opts))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
