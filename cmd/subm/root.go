package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/config"
	"github.com/subm/subm/internal/git"
	"github.com/subm/subm/internal/log"
	"github.com/subm/subm/internal/output"
	"github.com/subm/subm/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg *config.Config
)

// Command group IDs for organizing help output
const (
	GroupSubmodule = "submodule"
	GroupConfig    = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "subm",
	Short: "Git submodule manager",
	Long: `subm is a CLI tool for managing git submodules.

It wraps the usual add/update/push/init/status/remove submodule
workflows into single commands, including the follow-up staging and
commit steps git leaves to you.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	Args:                       cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Attach the logger after flag parsing so --verbose/--quiet apply
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)

		// Help, completion and config work outside a repository
		if skipRepoCheck(cmd) {
			return nil
		}

		// Check git is available, then the repository precondition
		if err := git.CheckGit(); err != nil {
			return err
		}
		return git.EnsureRepo(ctx)
	},
	// Unknown or missing commands print the enumerated command list and
	// exit with 0.
	RunE: func(cmd *cobra.Command, args []string) error {
		p := output.FromContext(cmd.Context())
		if len(args) > 0 {
			p.Warning("unknown command %q", args[0])
		}
		return cmd.Help()
	},
}

// skipRepoCheck reports whether cmd may run outside a git repository.
func skipRepoCheck(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "completion", "__complete", "help", "subm":
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	styles.Setup(styles.ColorMode(cfg.Color))

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		output.New(os.Stdout).Error("%v", err)
		fmt.Fprintln(os.Stderr, "Run 'subm -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupSubmodule, Title: "Submodule Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Submodule commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newUpdateSpecificCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newRemoveCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
