package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit, build date, and build information for filemanip.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", binaryName, info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", info.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built: %s\n", info.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "  built by: %s\n", info.BuiltBy)
		},
	}
}
