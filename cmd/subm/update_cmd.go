package main

import (
	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/git"
	"github.com/subm/subm/internal/output"
	"github.com/subm/subm/internal/ui/progress"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update",
		Short:   "Update all submodules to their remote latest",
		GroupID: GroupSubmodule,
		Args:    cobra.NoArgs,
		Long: `Update all submodules to the latest commit on their tracked remote
branch. When any submodule moved, the changes are staged and committed;
otherwise nothing is written.`,
		Example: `  subm update`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			top, err := git.TopLevel(ctx, "")
			if err != nil {
				return err
			}
			paths, err := git.ListSubmodulePaths(ctx, "")
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				p.Info("no submodules configured")
				return nil
			}

			sp := progress.NewSpinner("Fetching submodule remotes")
			sp.Start()
			err = git.UpdateSubmodulesRemote(ctx, top, cfg.Update.Rebase)
			sp.Stop()
			if err != nil {
				return err
			}

			changed, err := git.HasChanges(ctx, top, paths...)
			if err != nil {
				return err
			}
			if !changed {
				p.Info("submodules already up to date")
				return nil
			}

			if err := git.Stage(ctx, top, paths...); err != nil {
				return err
			}
			if err := git.Commit(ctx, top, cfg.Commit.UpdateMessage); err != nil {
				return err
			}

			p.Info("committed submodule updates")
			return nil
		},
	}

	return cmd
}
