package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/vtrg/internal/app"
	"go.trai.ch/vtrg/internal/core/ports"
)

type cleanCommand struct {
	app    Application
	logger ports.Logger
}

func newCleanCommand(a Application, log ports.Logger) *cleanCommand {
	return &cleanCommand{app: a, logger: log}
}

func (c *cleanCommand) Name() string { return "clean" }

func (c *cleanCommand) Help() string {
	return "Remove build directories and cache artifacts"
}

func (c *cleanCommand) Args() cobra.PositionalArgs { return cobra.NoArgs }

func (c *cleanCommand) AddFlags(flags *pflag.FlagSet) {
	flags.BoolP("all", "a", false, "Remove all build state (default)")
	flags.Bool("build", false, "Remove build directories only")
	flags.Bool("cache", false, "Remove generator cache artifacts only")
	flags.String("path", "", "Clean a specific build `PATH`")
	flags.Bool("dry-run", false, "List what would be removed without removing it")
}

func (c *cleanCommand) Execute(ctx context.Context, flags *pflag.FlagSet, _ []string) int {
	var opts app.CleanOptions
	opts.All, _ = flags.GetBool("all")
	opts.Build, _ = flags.GetBool("build")
	opts.Cache, _ = flags.GetBool("cache")
	opts.Path, _ = flags.GetString("path")
	opts.DryRun, _ = flags.GetBool("dry-run")

	report, err := c.app.Clean(ctx, opts)
	if err != nil {
		return exitCode(c.logger, err, 1)
	}

	if !report.DryRun && len(report.Removed) > 0 {
		c.logger.Success(fmt.Sprintf("cleaned %d paths", len(report.Removed)))
	}
	return 0
}
