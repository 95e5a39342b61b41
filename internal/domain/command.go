package domain

import "strings"

// Command identifies one of the supported file operations.
type Command string

const (
	CommandReverse           Command = "reverse"
	CommandCopy              Command = "copy"
	CommandDuplicateContents Command = "duplicate-contents"
	CommandReplaceString     Command = "replace-string"
)

// CommandSpec describes the positional contract of a Command.
type CommandSpec struct {
	Name        Command
	Args        []string
	Description string
}

// Arity returns the exact number of positional arguments the command takes.
func (s CommandSpec) Arity() int {
	return len(s.Args)
}

// Synopsis renders the argument placeholders, e.g. "<inputpath> <outputpath>".
func (s CommandSpec) Synopsis() string {
	placeholders := make([]string, len(s.Args))
	for i, arg := range s.Args {
		placeholders[i] = "<" + arg + ">"
	}
	return strings.Join(placeholders, " ")
}

// Use returns the cobra use line for the command.
func (s CommandSpec) Use() string {
	return string(s.Name) + " " + s.Synopsis()
}

//nolint:gochecknoglobals // Fixed command catalogue
var commandSpecs = []CommandSpec{
	{
		Name:        CommandReverse,
		Args:        []string{"inputpath", "outputpath"},
		Description: "Create outputpath containing the contents of inputpath in reverse order.",
	},
	{
		Name:        CommandCopy,
		Args:        []string{"inputpath", "outputpath"},
		Description: "Create a copy of the file at inputpath and save it as outputpath.",
	},
	{
		Name:        CommandDuplicateContents,
		Args:        []string{"inputpath", "n"},
		Description: "Replace the contents of inputpath with those contents repeated n times.",
	},
	{
		Name:        CommandReplaceString,
		Args:        []string{"inputpath", "needle", "newstring"},
		Description: "Replace every occurrence of 'needle' in inputpath with 'newstring'.",
	},
}

// Commands returns the catalogue of supported commands in display order.
func Commands() []CommandSpec {
	out := make([]CommandSpec, len(commandSpecs))
	copy(out, commandSpecs)
	return out
}

// LookupCommand returns the spec for name, if it is a supported command.
func LookupCommand(name string) (CommandSpec, bool) {
	for _, spec := range commandSpecs {
		if string(spec.Name) == name {
			return spec, true
		}
	}
	return CommandSpec{}, false
}
