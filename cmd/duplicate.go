package cmd

import (
	"github.com/spf13/cobra"

	"filemanip/internal/commands"
	"filemanip/internal/domain"
)

func newDuplicateCmd(c *cli) *cobra.Command {
	return newOperationCmd(domain.CommandDuplicateContents,
		`Replace the contents of inputpath with those contents repeated n times.

n must be a positive integer. Duplicating with n = 1 leaves the file
unchanged. The result may not exceed --max-output-bytes.

Examples:
  filemanip duplicate-contents pattern.txt 3`,
		c.runDuplicate)
}

func (c *cli) runDuplicate(cmd *cobra.Command, args []string) error {
	application, err := c.application(cmd)
	if err != nil {
		return err
	}

	duplicateCommand := commands.NewDuplicateCommand(
		application.FileSystem, application.Logger, application.Settings.MaxOutputBytes)
	if err := duplicateCommand.Execute(cmd.Context(), commands.DuplicateRequest{
		InputPath: args[0],
		Count:     args[1],
	}); err != nil {
		return err
	}
	return reportSuccess(cmd)
}
