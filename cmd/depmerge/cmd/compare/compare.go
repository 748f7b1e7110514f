// Package compare provides the compare command.
package compare

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/depmerge/internal/appcontext"
	"github.com/agentstation/depmerge/internal/cmd/output"
	"github.com/agentstation/depmerge/pkg/version"
)

// Result is the outcome of comparing two versions.
type Result struct {
	Left     string `json:"left" yaml:"left"`
	Right    string `json:"right" yaml:"right"`
	Ordering string `json:"ordering" yaml:"ordering"`
	Wildcard bool   `json:"wildcard" yaml:"wildcard"`
}

// NewCommand creates the compare command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var wildcard bool

	cmd := &cobra.Command{
		Use:     "compare A B",
		GroupID: "utility",
		Short:   "Show how two versions are ordered",
		Long: `Compare prints "<", "=" or ">" for two versions using the ordering the
merge applies to version-only conflicts. With --wildcard, components such
as "1.2.*" are accepted and versions that cannot be ordered print
"incomparable".`,
		Example: `  depmerge compare 1.0.0-beta.2 1.0.0-beta.11
  depmerge compare --wildcard 1.2.* 1.2.3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := Compare(args[0], args[1], wildcard)
			if err != nil {
				return err
			}
			return output.Print(cmd.OutOrStdout(), output.Format(app.OutputFormat()), result)
		},
	}

	cmd.Flags().BoolVarP(&wildcard, "wildcard", "w", false, "compare loosely, allowing * components")

	return cmd
}

// Compare orders a and b, strictly or with wildcard rules.
func Compare(a, b string, wildcard bool) (Result, error) {
	result := Result{Left: a, Right: b, Wildcard: wildcard}

	if wildcard {
		c, ok := version.CompareWildcard(a, b)
		if !ok {
			result.Ordering = "incomparable"
			return result, nil
		}
		result.Ordering = symbol(c)
		return result, nil
	}

	va, err := version.Parse(a)
	if err != nil {
		return Result{}, err
	}
	vb, err := version.Parse(b)
	if err != nil {
		return Result{}, err
	}
	result.Ordering = symbol(version.Compare(va, vb))
	return result, nil
}

func symbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}
