package main

import (
	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/git"
	"github.com/subm/subm/internal/output"
	"github.com/subm/subm/internal/ui/progress"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize and check out all submodules",
		GroupID: GroupSubmodule,
		Args:    cobra.NoArgs,
		Long: `Initialize the submodule configuration and check out the recorded
commits. Run this once after cloning a repository with submodules.`,
		Example: `  git clone <url> && cd <repo> && subm init`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			p.Info("initializing submodules")
			if err := git.InitSubmodules(ctx, ""); err != nil {
				return err
			}

			sp := progress.NewSpinner("Checking out submodules")
			sp.Start()
			err := git.CheckoutSubmodules(ctx, "")
			sp.Stop()
			if err != nil {
				return err
			}

			p.Info("submodules initialized")
			return nil
		},
	}

	return cmd
}
