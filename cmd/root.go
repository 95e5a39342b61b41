package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"filemanip/internal/app"
	"filemanip/internal/config"
	"filemanip/internal/domain"
	"filemanip/internal/errors"
)

const binaryName = "filemanip"

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// errUsageShown signals that the usage text has already been printed.
//
//nolint:gochecknoglobals // Sentinel compared by identity
var errUsageShown = errors.NewUsageError("", "no command specified")

// cli holds the state shared by one command tree.
type cli struct {
	cfgFile string
	verbose bool

	viper   *viper.Viper
	fs      afero.Fs
	appOpts []app.Option

	app *app.App
}

// Option configures the command tree.
type Option func(*cli)

// WithFs runs every operation and config lookup against fs.
func WithFs(fs afero.Fs) Option {
	return func(c *cli) {
		c.fs = fs
	}
}

// WithAppOptions forwards options to app.NewApp.
func WithAppOptions(opts ...app.Option) Option {
	return func(c *cli) {
		c.appOpts = append(c.appOpts, opts...)
	}
}

// NewRootCmd builds the filemanip command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	return newCLI(opts...).rootCmd()
}

func newCLI(opts ...Option) *cli {
	c := &cli{
		viper: config.NewViper(),
		fs:    afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   binaryName,
		Short: "Whole-file text transformations from the command line",
		Long: `Filemanip performs one whole-file text transformation per invocation:
reverse a file, copy it, duplicate its contents in place, or replace a
string throughout it.

Run without arguments to list the available commands.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printUsage(cmd.OutOrStdout())
				return errUsageShown
			}
			return errors.NewUnknownCommandError(args[0])
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewUsageError(cmd.Name(), err.Error())
	})

	defaults := config.Defaults()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.config/filemanip/config.yaml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	flags.String("log-format", defaults.LogFormat, "Log format: auto, text or json")
	flags.String("write-mode", defaults.WriteMode,
		"How files are replaced: atomic (temp file + rename, needs write access to the directory) "+
			"or direct (overwrite in place, use for writable files in read-only directories)")
	flags.String("reverse-unit", defaults.ReverseUnit, "Unit reversed by 'reverse': rune, byte or grapheme")
	flags.Int64("max-output-bytes", defaults.MaxOutputBytes,
		"Largest file duplicate-contents may produce (0 disables the limit)")
	cobra.CheckErr(config.BindFlags(c.viper, flags))

	rootCmd.AddCommand(
		newReverseCmd(c),
		newCopyCmd(c),
		newDuplicateCmd(c),
		newReplaceCmd(c),
		newVersionCmd(),
	)
	return rootCmd
}

// application loads the settings and wires the App on first use.
func (c *cli) application(cmd *cobra.Command) (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	settings, err := config.NewLoader(c.fs, c.viper).Load(c.cfgFile)
	if err != nil {
		return nil, err
	}

	opts := []app.Option{
		app.WithSettings(*settings),
		app.WithFs(c.fs),
		app.WithLogOutput(cmd.ErrOrStderr()),
	}
	if c.verbose {
		opts = append(opts, app.WithVerbose(true))
	}
	opts = append(opts, c.appOpts...)

	application, err := app.NewApp(cmd.Context(), opts...)
	if err != nil {
		return nil, err
	}
	c.app = application
	return application, nil
}

// exactArgs enforces the fixed arity of a command.
func exactArgs(spec domain.CommandSpec) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != spec.Arity() {
			return errors.NewArityError(string(spec.Name), spec.Arity(), spec.Synopsis(), len(args))
		}
		return nil
	}
}

// newOperationCmd creates the cobra command for a catalogue entry. Flag
// parsing stops at the first positional argument so values such as "-3"
// reach the validators untouched.
func newOperationCmd(name domain.Command, long string, run func(*cobra.Command, []string) error) *cobra.Command {
	spec, ok := domain.LookupCommand(string(name))
	if !ok {
		panic(fmt.Sprintf("command %q missing from catalogue", name))
	}
	cmd := &cobra.Command{
		Use:   spec.Use(),
		Short: spec.Description,
		Long:  long,
		Args:  exactArgs(spec),
		RunE:  run,
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func reportSuccess(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Operation completed successfully.")
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> <args>\n", binaryName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available commands:")
	for _, spec := range domain.Commands() {
		fmt.Fprintf(w, "  %s\n", spec.Use())
		fmt.Fprintf(w, "    %s\n", spec.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run '%s --help' for global flags.\n", binaryName)
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	fmt.Fprintf(w, "\nRun '%s' without arguments to see usage.\n", binaryName)
}

// Run executes the command tree with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	c := newCLI(opts...)
	rootCmd := c.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, errUsageShown) {
		if c.app != nil {
			c.app.Logger.DebugContext(ctx, "Command failed", "kind", errors.Kind(err), "error", err)
		}
		reportError(stderr, err)
	}
	return errors.ExitCode(err)
}

func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
