package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/vtrg/internal/app"
	"go.trai.ch/vtrg/internal/core/ports"
)

type buildCommand struct {
	app    Application
	logger ports.Logger
}

func newBuildCommand(a Application, log ports.Logger) *buildCommand {
	return &buildCommand{app: a, logger: log}
}

func (c *buildCommand) Name() string { return "build" }

func (c *buildCommand) Help() string {
	return "Build the engine, a sample or the sandbox"
}

func (c *buildCommand) Args() cobra.PositionalArgs { return cobra.NoArgs }

func (c *buildCommand) AddFlags(flags *pflag.FlagSet) {
	flags.String("sample", "", "Build the named sample instead of the engine")
	flags.Bool("sandbox", false, "Build the sandbox project")
	flags.String("platform", "", fmt.Sprintf("Target platform (%s); defaults to the host", platformNames()))
	flags.String("clean", "", "Clean `DIR` before configuring")
	flags.Bool("debug", false, "Build with the Debug configuration")
	flags.Bool("release", false, "Build with the Release configuration")
	flags.Bool("run", false, "Run the built executable and exit with its exit code")
	flags.Bool("check-deps", false, "Verify the toolchain is installed before building")
	flags.String("target", "", "Build a single engine `MODULE`")
}

func (c *buildCommand) Execute(ctx context.Context, flags *pflag.FlagSet, _ []string) int {
	var opts app.BuildOptions
	opts.Sample, _ = flags.GetString("sample")
	opts.Sandbox, _ = flags.GetBool("sandbox")
	opts.Platform, _ = flags.GetString("platform")
	opts.CleanDir, _ = flags.GetString("clean")
	opts.Debug, _ = flags.GetBool("debug")
	opts.Release, _ = flags.GetBool("release")
	opts.Run, _ = flags.GetBool("run")
	opts.CheckDeps, _ = flags.GetBool("check-deps")
	opts.Module, _ = flags.GetString("target")

	code, err := c.app.Build(ctx, opts)
	if err != nil {
		return exitCode(c.logger, err, code)
	}
	return code
}
