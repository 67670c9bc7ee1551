package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/subm/subm/internal/git"
)

// requireSubmodule fails with a helpful error when folder is not a
// configured submodule, suggesting close matches if any exist.
func requireSubmodule(ctx context.Context, folder string) error {
	ok, err := git.HasSubmodule(ctx, "", folder)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	paths, err := git.ListSubmodulePaths(ctx, "")
	if err != nil {
		return err
	}
	if suggestions := suggestSubmodules(paths, folder); len(suggestions) > 0 {
		return fmt.Errorf("no submodule at %q, did you mean: %s", folder, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("no submodule at %q", folder)
}

// suggestSubmodules returns up to three configured submodule folders
// fuzzy-matching the input.
func suggestSubmodules(paths []string, input string) []string {
	matches := fuzzy.Find(input, paths)
	var suggestions []string
	for i, m := range matches {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// completeSubmodulePaths provides completion for submodule folder arguments
func completeSubmodulePaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	paths, err := git.ListSubmodulePaths(cmd.Context(), "")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return paths, cobra.ShellCompDirectiveNoFileComp
}
