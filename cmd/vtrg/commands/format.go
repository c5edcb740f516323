package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/vtrg/internal/app"
	"go.trai.ch/vtrg/internal/core/ports"
)

type formatCommand struct {
	app    Application
	logger ports.Logger
}

func newFormatCommand(a Application, log ports.Logger) *formatCommand {
	return &formatCommand{app: a, logger: log}
}

func (c *formatCommand) Name() string { return "format" }

func (c *formatCommand) Help() string {
	return "Format C and C++ sources with clang-format"
}

func (c *formatCommand) Args() cobra.PositionalArgs { return cobra.NoArgs }

func (c *formatCommand) AddFlags(flags *pflag.FlagSet) {
	flags.String("path", ".", "Directory to format")
	flags.Bool("check", false, "Report unformatted files without rewriting them")
	flags.StringSlice("extensions", nil, "File extensions to format (default from format.extensions)")
	flags.StringSlice("exclude", nil, "Glob patterns to skip (default from format.exclude_patterns)")
}

func (c *formatCommand) Execute(ctx context.Context, flags *pflag.FlagSet, _ []string) int {
	var opts app.FormatOptions
	opts.Path, _ = flags.GetString("path")
	opts.Check, _ = flags.GetBool("check")

	if flags.Changed("extensions") {
		opts.Extensions, _ = flags.GetStringSlice("extensions")
		if opts.Extensions == nil {
			opts.Extensions = []string{}
		}
	}
	if flags.Changed("exclude") {
		opts.Exclude, _ = flags.GetStringSlice("exclude")
		if opts.Exclude == nil {
			opts.Exclude = []string{}
		}
	}

	if _, err := c.app.Format(ctx, opts); err != nil {
		return exitCode(c.logger, err, 1)
	}
	return 0
}
