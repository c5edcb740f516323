package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/zerr"
)

// Command is one vtrg subcommand.
// Execute never returns an error: failures are logged and mapped to an exit code.
type Command interface {
	Name() string
	Help() string
	AddFlags(flags *pflag.FlagSet)
	Args() cobra.PositionalArgs
	Execute(ctx context.Context, flags *pflag.FlagSet, args []string) int
}

// Registry holds the commands of the CLI in registration order.
type Registry struct {
	commands []Command
	byName   map[string]Command
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds cmd. Names must be unique.
func (r *Registry) Register(cmd Command) error {
	name := cmd.Name()
	if _, exists := r.byName[name]; exists {
		return zerr.With(zerr.New("command already registered"), "command", name)
	}
	r.byName[name] = cmd
	r.commands = append(r.commands, cmd)
	return nil
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, error) {
	cmd, ok := r.byName[name]
	if !ok {
		return nil, zerr.With(domain.Fail(domain.ErrUnknownCommand, nil), "command", name)
	}
	return cmd, nil
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}
