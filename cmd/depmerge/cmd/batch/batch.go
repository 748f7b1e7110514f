// Package batch provides the batch command.
package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/depmerge"
	"github.com/agentstation/depmerge/internal/appcontext"
	"github.com/agentstation/depmerge/internal/cmd/alerts"
	"github.com/agentstation/depmerge/internal/cmd/globals"
	"github.com/agentstation/depmerge/internal/cmd/output"
	"github.com/agentstation/depmerge/internal/cmd/table"
)

// NewCommand creates the batch command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "batch FILE",
		GroupID: "core",
		Short:   "Merge every manifest listed in a job file",
		Long: `Batch merges each job of a YAML job file in order. Paths are relative to
the job file. A job that is skipped or fails is reported and the run goes
on; quitting at a prompt stops the whole run.

  jobs:
    - name: app
      base: app/base.yaml
      local: app/deps.yaml
      incoming: app/theirs.yaml`,
		Example: `  depmerge batch jobs.yaml
  depmerge batch jobs.yaml --strategy fail --format wide`,
		Args: cobra.ExactArgs(1),
	}

	mergeFlags := globals.AddMergeFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		jobs, err := depmerge.LoadJobs(args[0])
		if err != nil {
			return err
		}

		opts := append(mergeFlags.Options(), depmerge.WithConsole(cmd.InOrStdin(), cmd.ErrOrStderr()))
		m, err := app.Merger(opts...)
		if err != nil {
			return err
		}

		result, runErr := m.Run(cmd.Context(), jobs)

		format := output.Format(app.OutputFormat())
		var view any = table.Reports(result.Reports)
		if format != output.FormatTable && format != output.FormatWide {
			view = result
		}
		if err := output.Print(cmd.OutOrStdout(), format, view); err != nil {
			return err
		}

		if flags := globals.Parse(cmd); !flags.Quiet {
			_ = alerts.NewWriter(cmd.ErrOrStderr(), flags.NoColor).Write(alerts.ForBatch(result))
		}

		if runErr != nil {
			return runErr
		}
		if merged := result.Count(depmerge.StatusMerged); merged != len(jobs) {
			return fmt.Errorf("%d of %d manifests were not merged", len(jobs)-merged, len(jobs))
		}
		return nil
	}

	return cmd
}
