package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitsub/internal/log"
	"gitsub/internal/output"
	"gitsub/internal/subproject"
)

func newLinkCmd() *cobra.Command {
	var (
		all    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "link [path]",
		Short: "Restore the gitdir pointer of sub-projects",
		Args:  cobra.MaximumNArgs(1),
		Long: `Restore the .git pointer file of sub-projects whose metadata directory
survived a parent clone but whose pointer did not.

Without --all, links the single given path (default: current directory);
a path without a metadata directory is an error. With --all, walks the
tree, links every sub-project it finds, and keeps going past individual
failures; finding nothing to do is a success.

Linking never overwrites a real .git directory and never rewrites a
pointer file with unexpected content.`,
		Example: `  gitsub link lib              # link one sub-project
  gitsub link                  # link the current directory
  gitsub link --all            # find and link everything below .
  gitsub link --all --dry-run  # report without writing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			opts := cfg.Options(dryRun)

			var results []subproject.Result
			if all {
				l.Debug("scanning", "root", path, "dryRun", dryRun)
				var err error
				results, err = subproject.Discover(ctx, path, opts)
				if err != nil {
					return fmt.Errorf("scan %s: %w", path, err)
				}
			} else {
				results = []subproject.Result{subproject.Link(ctx, path, opts)}
			}

			return reportResults(out, results, all, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Recursively link every sub-project under path")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be done without writing")

	return cmd
}
