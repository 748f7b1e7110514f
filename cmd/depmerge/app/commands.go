package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/depmerge/cmd/depmerge/cmd/batch"
	"github.com/agentstation/depmerge/cmd/depmerge/cmd/compare"
	"github.com/agentstation/depmerge/cmd/depmerge/cmd/driver"
	"github.com/agentstation/depmerge/cmd/depmerge/cmd/merge"
	"github.com/agentstation/depmerge/cmd/depmerge/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(merge.NewCommand(a))
	rootCmd.AddCommand(driver.NewCommand(a))
	rootCmd.AddCommand(batch.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(compare.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
