// Package main is the entry point for the vtrg developer tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/vtrg/cmd/vtrg/commands"
	"go.trai.ch/vtrg/internal/app"
	"go.trai.ch/vtrg/internal/core/domain"
	_ "go.trai.ch/vtrg/internal/wiring"
)

const (
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if ctx.Err() != nil {
		components.Logger.Warn("interrupted")
		return exitInterrupted
	}

	// 3. Execution
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx)
	}()

	select {
	case <-ctx.Done():
		components.Logger.Warn("interrupted")
		return exitInterrupted
	case err := <-done:
		return exitStatus(components, err)
	}
}

// exitStatus maps the result of the CLI to a process exit code.
// Commands log their own failures and report them as an ExitError.
func exitStatus(components *app.Components, err error) int {
	if err == nil {
		return 0
	}

	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	components.Logger.Error(err)
	if errors.Is(err, domain.ErrInvalidUsage) {
		return exitUsage
	}
	return exitFailure
}
