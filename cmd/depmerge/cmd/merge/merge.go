// Package merge provides the merge command.
package merge

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/depmerge"
	"github.com/agentstation/depmerge/internal/appcontext"
	"github.com/agentstation/depmerge/internal/cmd/globals"
	"github.com/agentstation/depmerge/internal/cmd/output"
	"github.com/agentstation/depmerge/internal/cmd/table"
)

// NewCommand creates the merge command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var job depmerge.Job

	cmd := &cobra.Command{
		Use:     "merge",
		GroupID: "core",
		Short:   "Merge three revisions of a manifest",
		Long: `Merge combines the base, local and incoming revisions of a manifest and
writes the result to --output (the local file by default). A missing base
or incoming file is treated as an empty manifest.

The report lists every key that changed on either side, the change pattern,
the side the result came from and whether a resolver was consulted.`,
		Example: `  depmerge merge --base base.yaml --local ours.yaml --incoming theirs.yaml
  depmerge merge -b base.yaml -l ours.yaml -i theirs.yaml -o merged.yaml --strategy incoming
  depmerge merge -b base.yaml -l ours.yaml -i theirs.yaml --kind packages --format json`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVarP(&job.Base, "base", "b", "", "common ancestor manifest")
	cmd.Flags().StringVarP(&job.Local, "local", "l", "", "local manifest (required)")
	cmd.Flags().StringVarP(&job.Incoming, "incoming", "i", "", "incoming manifest (required)")
	cmd.Flags().StringVarP(&job.Output, "output", "o", "", "where to write the result (default is --local)")
	_ = cmd.MarkFlagRequired("local")
	_ = cmd.MarkFlagRequired("incoming")
	mergeFlags := globals.AddMergeFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		opts := append(mergeFlags.Options(), depmerge.WithConsole(cmd.InOrStdin(), cmd.ErrOrStderr()))
		m, err := app.Merger(opts...)
		if err != nil {
			return err
		}

		report, err := m.MergeFiles(cmd.Context(), job)
		if report != nil {
			format := output.Format(app.OutputFormat())
			if printErr := output.Print(cmd.OutOrStdout(), format, table.Decisions{Report: report}); printErr != nil && err == nil {
				err = printErr
			}
		}
		return err
	}

	return cmd
}
