package main

import (
	"github.com/spf13/cobra"

	"gitsub/internal/output"
	"gitsub/internal/subproject"
)

func newCloneCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "clone <url> <path>",
		Short: "Clone a repository as a linked sub-project",
		Args:  cobra.ExactArgs(2),
		Long: `Clone a repository and immediately convert it to a linked sub-project:
the cloned .git directory is relocated to the metadata name and replaced
by a pointer file.

Fails without leaving a partial target behind if the clone itself fails,
and refuses a target that already exists and is not empty.`,
		Example: `  gitsub clone https://example.com/lib.git lib
  gitsub clone -b v2 https://example.com/lib.git lib`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			url, target := args[0], args[1]
			if err := subproject.Clone(ctx, url, target, branch, cfg.Options(false)); err != nil {
				return err
			}
			out.Printf("Cloned %s as sub-project %s\n", url, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Check out this branch instead of the remote default")

	return cmd
}
