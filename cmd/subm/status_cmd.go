package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/git"
	"github.com/subm/subm/internal/output"
	"github.com/subm/subm/internal/ui/styles"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show submodule status",
		GroupID: GroupSubmodule,
		Args:    cobra.NoArgs,
		Long: `Show the pointer status of every submodule, followed by each
submodule's uncommitted changes.`,
		Example: `  subm status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			paths, err := git.ListSubmodulePaths(ctx, "")
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				p.Info("no submodules configured")
				return nil
			}

			p.Header("Submodule status")
			pointerStatus, err := git.SubmoduleStatus(ctx, "")
			if err != nil {
				return err
			}
			p.Print(pointerStatus)
			p.Println()

			p.Header("Uncommitted changes")
			top, err := git.TopLevel(ctx, "")
			if err != nil {
				return err
			}
			for _, sm := range paths {
				short, err := git.StatusShort(ctx, filepath.Join(top, sm))
				if err != nil {
					return err
				}
				if strings.TrimSpace(short) == "" {
					p.Printf("%s: %s\n", sm, styles.SuccessStyle.Render("clean"))
					continue
				}
				p.Printf("%s:\n", sm)
				p.Print(short)
			}

			return nil
		},
	}

	return cmd
}
