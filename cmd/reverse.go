package cmd

import (
	"github.com/spf13/cobra"

	"filemanip/internal/commands"
	"filemanip/internal/domain"
	"filemanip/internal/transform"
)

func newReverseCmd(c *cli) *cobra.Command {
	reverseCmd := newOperationCmd(domain.CommandReverse,
		`Create outputpath containing the contents of inputpath in reverse order.

The input is reversed by Unicode code point unless another unit is
selected with --unit or --reverse-unit. Bytes that are not valid UTF-8
are kept as single units. An existing outputpath is replaced.

Examples:
  filemanip reverse notes.txt setons.txt
  filemanip reverse --unit grapheme emoji.txt ijome.txt`,
		c.runReverse)
	reverseCmd.Flags().String("unit", "",
		"Unit of reversal for this run: "+transform.SupportedUnitsString()+" (default from --reverse-unit)")
	return reverseCmd
}

func (c *cli) runReverse(cmd *cobra.Command, args []string) error {
	application, err := c.application(cmd)
	if err != nil {
		return err
	}

	unit := application.Settings.ReverseUnit
	if cmd.Flags().Changed("unit") {
		unit, _ = cmd.Flags().GetString("unit")
	}

	reverseCommand := commands.NewReverseCommand(application.FileSystem, application.Logger)
	err = reverseCommand.Execute(cmd.Context(), commands.ReverseRequest{
		InputPath:  args[0],
		OutputPath: args[1],
		Unit:       transform.Unit(unit),
	})
	if err != nil {
		return err
	}
	return reportSuccess(cmd)
}
