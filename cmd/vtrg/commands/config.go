package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/zerr"
)

// configArity maps each config action to its number of operands.
var configArity = map[string]int{
	"list":  0,
	"path":  0,
	"reset": 0,
	"get":   1,
	"set":   2,
}

type configCommand struct {
	app    Application
	logger ports.Logger
	out    func() io.Writer
}

func newConfigCommand(a Application, log ports.Logger, out func() io.Writer) *configCommand {
	return &configCommand{app: a, logger: log, out: out}
}

func (c *configCommand) Name() string { return "config" }

func (c *configCommand) Help() string {
	return "Show or change user settings (list, path, reset, get KEY, set KEY VALUE)"
}

func (c *configCommand) AddFlags(_ *pflag.FlagSet) {}

func (c *configCommand) Args() cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return zerr.New("missing action: expected one of list, path, reset, get, set")
		}
		want, ok := configArity[args[0]]
		if !ok {
			return zerr.With(zerr.New("unknown config action"), "action", args[0])
		}
		if len(args)-1 != want {
			return zerr.With(zerr.With(zerr.New("wrong number of arguments"), "action", args[0]), "expected", want)
		}
		return nil
	}
}

func (c *configCommand) Execute(_ context.Context, _ *pflag.FlagSet, args []string) int {
	out := c.out()

	var err error
	switch args[0] {
	case "list":
		err = printSettings(out, "", c.app.Settings())
	case "path":
		_, err = fmt.Fprintln(out, c.app.SettingsPath())
	case "reset":
		err = c.app.ResetSettings()
	case "get":
		var value any
		if value, err = c.app.Setting(args[1]); err == nil {
			err = printValue(out, value)
		}
	case "set":
		err = c.app.SetSetting(args[1], args[2])
	}

	if err != nil {
		return exitCode(c.logger, err, 1)
	}
	return 0
}

// printSettings writes one "key = value" line per leaf, sorted by key.
func printSettings(w io.Writer, prefix string, section map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(section)) {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		if nested, ok := section[key].(map[string]any); ok {
			if err := printSettings(w, name, nested); err != nil {
				return err
			}
			continue
		}

		encoded, err := json.Marshal(section[key])
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to encode setting"), "key", name)
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, encoded); err != nil {
			return err
		}
	}
	return nil
}

func printValue(w io.Writer, value any) error {
	if s, ok := value.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode setting")
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
