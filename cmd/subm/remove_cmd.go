package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/git"
	"github.com/subm/subm/internal/output"
	"github.com/subm/subm/internal/ui/prompt"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "remove <folder-name>",
		Short:             "Remove a submodule",
		Aliases:           []string{"rm"},
		GroupID:           GroupSubmodule,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSubmodulePaths,
		Long: `Remove a submodule after interactive confirmation.

Deinitializes the submodule, removes it from the index and working tree,
and deletes its internal metadata directory under .git/modules. Declining
the confirmation cancels without side effects.`,
		Example: `  subm remove vendor/lib
  subm remove vendor/lib --force   # skip confirmation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			folder := args[0]
			if err := requireSubmodule(ctx, folder); err != nil {
				return err
			}

			if !force {
				result, err := prompt.Confirm(fmt.Sprintf("Remove submodule %s?", folder))
				if err != nil {
					return err
				}
				if result.Cancelled || !result.Confirmed {
					p.Info("cancelled")
					return nil
				}
			}

			p.Info("deinitializing submodule %s", folder)
			if err := git.DeinitSubmodule(ctx, "", folder); err != nil {
				return err
			}

			p.Info("removing %s from the index and working tree", folder)
			if err := git.RemoveFromIndex(ctx, "", folder); err != nil {
				return err
			}

			p.Info("deleting submodule metadata")
			if err := git.RemoveSubmoduleMetadata(ctx, "", folder); err != nil {
				return err
			}

			p.Info("removed submodule %s", folder)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove without confirmation")

	return cmd
}
