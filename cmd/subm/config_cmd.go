package main

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/config"
	"github.com/subm/subm/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage subm configuration",
		GroupID: GroupConfig,
		Example: `  subm config init           # Create default config
  subm config show           # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default config file",
		Args:  cobra.NoArgs,
		Long:  `Create the default config file at ~/.config/subm/config.toml.`,
		Example: `  subm config init           # Create config if missing
  subm config init -f        # Overwrite existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteDefault(force)
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Info("wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		Example: `  subm config show           # Show config in TOML format
  subm config show --json    # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := output.FromContext(cmd.Context())

			if asJSON {
				enc := json.NewEncoder(p.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}
			return toml.NewEncoder(p.Writer()).Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
