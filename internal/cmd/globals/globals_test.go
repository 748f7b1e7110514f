package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	root := &cobra.Command{Use: "depmerge"}
	root.PersistentFlags().String("format", "", "")
	root.PersistentFlags().Bool("quiet", false, "")
	root.PersistentFlags().Bool("verbose", false, "")
	root.PersistentFlags().Bool("no-color", false, "")
	root.PersistentFlags().String("log-level", "", "")
	child := &cobra.Command{Use: "merge"}
	root.AddCommand(child)

	require.NoError(t, root.PersistentFlags().Set("format", "yaml"))
	require.NoError(t, root.PersistentFlags().Set("verbose", "true"))

	flags := Parse(child)
	assert.Equal(t, "yaml", flags.Format)
	assert.True(t, flags.Verbose)
	assert.False(t, flags.Quiet)
}

func TestMergeFlagsOptions(t *testing.T) {
	cmd := &cobra.Command{Use: "merge"}
	flags := AddMergeFlags(cmd)
	assert.Empty(t, flags.Options())

	require.NoError(t, cmd.Flags().Set("strategy", "incoming"))
	require.NoError(t, cmd.Flags().Set("kind", "packages"))
	assert.Len(t, flags.Options(), 2)
}
