// Package commands implements the CLI commands for the vtrg developer tool.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/vtrg/internal/app"
	"go.trai.ch/vtrg/internal/build"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
)

// CLI represents the command line interface for vtrg.
type CLI struct {
	app      Application
	logger   ports.Logger
	registry *Registry
	rootCmd  *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Prepare(opts app.GlobalOptions)
	Build(ctx context.Context, opts app.BuildOptions) (int, error)
	Clean(ctx context.Context, opts app.CleanOptions) (domain.CleanReport, error)
	Format(ctx context.Context, opts app.FormatOptions) (domain.FormatReport, error)
	Setting(key string) (any, error)
	SetSetting(key, raw string) error
	Settings() map[string]any
	ResetSettings() error
	SettingsPath() string
}

// ExitError carries the non-zero exit code of a command to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	c := &CLI{
		app:      a,
		logger:   log,
		registry: NewRegistry(),
	}

	rootCmd := &cobra.Command{
		Use:           "vtrg",
		Short:         "Developer CLI for the Vantor engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			noColor, _ := cmd.Flags().GetBool("no-color")
			c.app.Prepare(app.GlobalOptions{Verbose: verbose, NoColor: noColor})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return &ExitError{Code: 1}
			}
			_, err := c.registry.Lookup(args[0])
			return usageError(err)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	c.rootCmd = rootCmd

	for _, cmd := range []Command{
		newBuildCommand(a, log),
		newCleanCommand(a, log),
		newFormatCommand(a, log),
		newConfigCommand(a, log, rootCmd.OutOrStdout),
	} {
		if err := c.registry.Register(cmd); err != nil {
			panic(err)
		}
		rootCmd.AddCommand(c.bind(cmd))
	}
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// bind exposes a registered Command as a cobra subcommand.
func (c *CLI) bind(command Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   command.Name(),
		Short: command.Help(),
		Args:  usageArgs(command.Args()),
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := command.Execute(cmd.Context(), cmd.Flags(), args); code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
	command.AddFlags(cmd.Flags())
	return cmd
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// Registry returns the registered commands.
func (c *CLI) Registry() *Registry {
	return c.registry
}

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	if fn == nil {
		return nil
	}
	return func(cmd *cobra.Command, args []string) error {
		return usageError(fn(cmd, args))
	}
}

func usageError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(domain.ErrInvalidUsage, err)
}

// exitCode logs err and maps it to the exit code of a failed command.
func exitCode(log ports.Logger, err error, code int) int {
	log.Error(err)
	if errors.Is(err, domain.ErrInvalidUsage) {
		return 2
	}
	if code == 0 {
		return 1
	}
	return code
}

func platformNames() string {
	names := make([]string, 0, len(domain.Platforms()))
	for _, p := range domain.Platforms() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
