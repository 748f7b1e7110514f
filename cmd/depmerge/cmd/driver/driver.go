// Package driver provides the git merge driver command.
package driver

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/depmerge"
	"github.com/agentstation/depmerge/internal/appcontext"
	"github.com/agentstation/depmerge/internal/cmd/globals"
)

// NewCommand creates the driver command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "driver BASE LOCAL INCOMING",
		GroupID: "core",
		Short:   "Run as a git merge driver",
		Long: `Driver merges in place the way git expects a merge driver to: the result
overwrites LOCAL, and the exit status is 0 when every conflict was settled
and 1 when the merge was skipped or failed, leaving LOCAL untouched.

Register it once per repository:

  git config merge.depmerge.name "dependency manifest merge"
  git config merge.depmerge.driver "depmerge driver --name %P %O %A %B"

and select it in .gitattributes:

  *.deps.yaml merge=depmerge`,
		Args: cobra.ExactArgs(3),
	}

	cmd.Flags().StringVar(&name, "name", "", "path shown in logs and prompts (git's %P)")
	mergeFlags := globals.AddMergeFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := append(mergeFlags.Options(), depmerge.WithConsole(cmd.InOrStdin(), cmd.ErrOrStderr()))
		m, err := app.Merger(opts...)
		if err != nil {
			return err
		}

		job := depmerge.Job{
			Name:     name,
			Base:     args[0],
			Local:    args[1],
			Incoming: args[2],
		}
		report, err := m.MergeFiles(cmd.Context(), job)
		if err != nil {
			return err
		}

		s := report.Summary()
		app.Logger().Info().
			Str("manifest", report.Manifest).
			Int("automatic", s.Automatic).
			Int("escalated", s.Escalated).
			Msg("Merge driver finished")
		return nil
	}

	return cmd
}
