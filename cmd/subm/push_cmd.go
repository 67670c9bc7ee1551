package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/git"
	"github.com/subm/subm/internal/output"
)

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "push",
		Short:   "Push the repository and all submodules",
		GroupID: GroupSubmodule,
		Args:    cobra.NoArgs,
		Long: `Push the containing repository first, then each submodule
independently. The first failing push stops the run; already pushed
repositories stay pushed.`,
		Example: `  subm push`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			p.Info("pushing repository")
			if err := git.Push(ctx, ""); err != nil {
				return err
			}

			top, err := git.TopLevel(ctx, "")
			if err != nil {
				return err
			}
			paths, err := git.ListSubmodulePaths(ctx, "")
			if err != nil {
				return err
			}

			for _, sm := range paths {
				p.Info("pushing submodule %s", sm)
				if err := git.Push(ctx, filepath.Join(top, sm)); err != nil {
					return fmt.Errorf("push submodule %s: %w", sm, err)
				}
			}

			p.Info("push complete")
			return nil
		},
	}

	return cmd
}
