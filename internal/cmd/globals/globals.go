// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/depmerge"
	"github.com/agentstation/depmerge/pkg/resolvers"
)

// Flags holds global common flags across all commands.
type Flags struct {
	Format   string
	Quiet    bool
	Verbose  bool
	NoColor  bool
	LogLevel string
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) *Flags {
	// Walk up the command hierarchy to find persistent flags
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	format, _ := root.PersistentFlags().GetString("format")
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	noColor, _ := root.PersistentFlags().GetBool("no-color")
	logLevel, _ := root.PersistentFlags().GetString("log-level")

	return &Flags{
		Format:   format,
		Quiet:    quiet,
		Verbose:  verbose,
		NoColor:  noColor,
		LogLevel: logLevel,
	}
}

// MergeFlags holds the resolution flags shared by merge, driver and batch.
type MergeFlags struct {
	Strategy string
	Kind     string
}

// AddMergeFlags adds the resolution flags to a command. Empty values fall
// back to the configuration.
func AddMergeFlags(cmd *cobra.Command) *MergeFlags {
	flags := &MergeFlags{}
	cmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", "",
		"Unresolved conflicts: "+strings.Join(resolvers.Strategies, ", ")+", prompt")
	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "",
		"Entries to merge: "+strings.Join(depmerge.Kinds, ", "))
	return flags
}

// Options converts the flags into merger options, skipping unset ones.
func (f *MergeFlags) Options() []depmerge.Option {
	var opts []depmerge.Option
	if f.Strategy != "" {
		opts = append(opts, depmerge.WithStrategy(f.Strategy))
	}
	if f.Kind != "" {
		opts = append(opts, depmerge.WithKind(f.Kind))
	}
	return opts
}
