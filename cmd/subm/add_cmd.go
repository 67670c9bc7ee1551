package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/config"
	"github.com/subm/subm/internal/git"
	"github.com/subm/subm/internal/output"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <repository-url> <folder-name>",
		Short:   "Add a submodule",
		GroupID: GroupSubmodule,
		Args:    cobra.ExactArgs(2),
		Long: `Add a repository as a submodule.

Registers the folder as a submodule tracking the given URL, stages the
.gitmodules file together with the folder, and commits the result.`,
		Example: `  subm add https://github.com/org/lib.git vendor/lib
  subm add git@github.com:org/lib.git libs/lib`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			url, folder := args[0], args[1]

			p.Info("adding submodule %s from %s", folder, url)
			if err := git.AddSubmodule(ctx, "", url, folder); err != nil {
				return err
			}

			// git submodule add already stages both entries, but staging
			// explicitly keeps the commit correct when hooks touch the tree.
			top, err := git.TopLevel(ctx, "")
			if err != nil {
				return err
			}
			absFolder, err := filepath.Abs(folder)
			if err != nil {
				return err
			}
			if err := git.Stage(ctx, top, git.GitmodulesFile, absFolder); err != nil {
				return err
			}

			if err := git.Commit(ctx, top, config.Message(cfg.Commit.AddMessage, folder)); err != nil {
				return err
			}

			p.Info("added submodule %s", folder)
			return nil
		},
	}

	return cmd
}
