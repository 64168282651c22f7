package main

import (
	"github.com/spf13/cobra"

	"gitsub/internal/output"
	"gitsub/internal/subproject"
)

func newCreateCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "create [path]",
		Short: "Convert an existing directory into a linked sub-project",
		Args:  cobra.MaximumNArgs(1),
		Long: `Initialize a repository in an existing directory and link it as a
sub-project. All pre-existing files are staged for a first commit but
not committed; an optional remote URL is configured as origin.

Refuses directories that already contain a repository or a metadata
directory.`,
		Example: `  gitsub create lib
  gitsub create lib --remote https://example.com/lib.git`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if err := subproject.Create(ctx, dir, remote, cfg.Options(false)); err != nil {
				return err
			}
			out.Printf("Created sub-project %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Configure this URL as the origin remote")

	return cmd
}
