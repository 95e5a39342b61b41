package cmd

import (
	"github.com/spf13/cobra"

	"filemanip/internal/commands"
	"filemanip/internal/domain"
)

func newCopyCmd(c *cli) *cobra.Command {
	return newOperationCmd(domain.CommandCopy,
		`Create a copy of the file at inputpath and save it as outputpath.

The copy is byte-for-byte identical. An existing outputpath is replaced.

Examples:
  filemanip copy report.txt report.bak`,
		c.runCopy)
}

func (c *cli) runCopy(cmd *cobra.Command, args []string) error {
	application, err := c.application(cmd)
	if err != nil {
		return err
	}

	copyCommand := commands.NewCopyCommand(application.FileSystem, application.Logger)
	if err := copyCommand.Execute(cmd.Context(), commands.CopyRequest{
		InputPath:  args[0],
		OutputPath: args[1],
	}); err != nil {
		return err
	}
	return reportSuccess(cmd)
}
