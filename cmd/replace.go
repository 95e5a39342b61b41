package cmd

import (
	"github.com/spf13/cobra"

	"filemanip/internal/commands"
	"filemanip/internal/domain"
)

func newReplaceCmd(c *cli) *cobra.Command {
	return newOperationCmd(domain.CommandReplaceString,
		`Replace every occurrence of 'needle' in inputpath with 'newstring'.

Matches are found left to right without overlap, and replacement text is
never searched again. needle must not be empty; newstring may be.

Examples:
  filemanip replace-string config.ini localhost 127.0.0.1
  filemanip replace-string notes.txt TODO ''`,
		c.runReplace)
}

func (c *cli) runReplace(cmd *cobra.Command, args []string) error {
	application, err := c.application(cmd)
	if err != nil {
		return err
	}

	replaceCommand := commands.NewReplaceCommand(application.FileSystem, application.Logger)
	result, err := replaceCommand.Execute(cmd.Context(), commands.ReplaceRequest{
		InputPath:   args[0],
		Needle:      args[1],
		Replacement: args[2],
	})
	if err != nil {
		return err
	}

	application.Logger.DebugContext(cmd.Context(), "Replace finished", "replacements", result.Replacements)
	return reportSuccess(cmd)
}
