package main

import (
	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/config"
	"github.com/subm/subm/internal/git"
	"github.com/subm/subm/internal/output"
	"github.com/subm/subm/internal/ui/progress"
)

func newUpdateSpecificCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "update-specific <folder-name>",
		Short:             "Update a single submodule to its remote latest",
		GroupID:           GroupSubmodule,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSubmodulePaths,
		Long: `Update one submodule to the latest commit on its tracked remote
branch, then stage and commit the new pointer. Nothing is written when
the submodule is already current.`,
		Example: `  subm update-specific vendor/lib`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			folder := args[0]

			top, err := git.TopLevel(ctx, "")
			if err != nil {
				return err
			}
			if err := requireSubmodule(ctx, folder); err != nil {
				return err
			}

			sp := progress.NewSpinner("Fetching submodule remote")
			sp.Start()
			err = git.UpdateSubmodulesRemote(ctx, top, cfg.Update.Rebase, folder)
			sp.Stop()
			if err != nil {
				return err
			}

			changed, err := git.HasChanges(ctx, top, folder)
			if err != nil {
				return err
			}
			if !changed {
				p.Info("submodule %s already up to date", folder)
				return nil
			}

			if err := git.Stage(ctx, top, folder); err != nil {
				return err
			}
			if err := git.Commit(ctx, top, config.Message(cfg.Commit.UpdateOneMessage, folder)); err != nil {
				return err
			}

			p.Info("committed update for submodule %s", folder)
			return nil
		},
	}

	return cmd
}
