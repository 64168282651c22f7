package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitsub/internal/output"
	"gitsub/internal/subproject"
	"gitsub/internal/ui/styles"
)

func newStatusCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "status [path]",
		Short: "Report sub-project linkage state without repairing",
		Args:  cobra.MaximumNArgs(1),
		Long: `Classify sub-projects without writing anything.

Shows whether each candidate is linked, unlinked (repairable with
'gitsub link'), or in a state that needs manual attention (blocked,
pointer conflict, invalid metadata).`,
		Example: `  gitsub status lib       # one sub-project
  gitsub status --all     # everything below the current directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			opts := cfg.Options(true)

			var results []subproject.Result
			if all {
				var err error
				results, err = subproject.Discover(ctx, path, opts)
				if err != nil {
					return fmt.Errorf("scan %s: %w", path, err)
				}
			} else {
				results = []subproject.Result{subproject.Classify(path, opts)}
			}

			if len(results) == 0 {
				out.Println("No sub-projects found")
				return nil
			}

			var unlinked, attention int
			for _, r := range results {
				out.Println(formatStatus(r))
				switch r.Outcome {
				case subproject.Linked:
					unlinked++
				case subproject.AlreadyLinked:
				default:
					attention++
				}
			}
			if unlinked > 0 {
				out.Printf("\nRun 'gitsub link --all' to repair %d unlinked sub-project(s).\n", unlinked)
			}
			if attention > 0 {
				out.Printf("%d sub-project(s) need manual attention.\n", attention)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Recursively report every sub-project under path")

	return cmd
}

// formatStatus renders a read-only classification. A Linked outcome from
// Classify means the candidate is repairable, shown as unlinked.
func formatStatus(r subproject.Result) string {
	switch r.Outcome {
	case subproject.AlreadyLinked:
		return styles.OK(r.Path + "  linked")
	case subproject.Linked:
		return styles.Warn(r.Path + "  unlinked")
	default:
		line := fmt.Sprintf("%s  %s", r.Path, r.Outcome)
		if r.Detail != "" {
			line += " " + styles.Render(styles.MutedStyle, "("+r.Detail+")")
		}
		return styles.Fail(line)
	}
}
