package orchestrator

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/zerr"
)

// SwitchSDKEnv names the environment variable pointing at the Switch SDK.
const SwitchSDKEnv = "DEVKITPRO"

// CheckDependencies verifies that the toolchain needed to build for platform is installed.
func (o *Orchestrator) CheckDependencies(_ context.Context, platform domain.Platform) error {
	var missing []string
	for _, tool := range []string{ConfigureExecutable, CompileExecutable} {
		path, err := o.runner.LookPath(tool)
		if err != nil {
			missing = append(missing, tool)
			continue
		}
		o.logger.Debug(fmt.Sprintf("found %s at %s", tool, path))
	}
	if len(missing) > 0 {
		return zerr.With(domain.Fail(domain.ErrDependencyMissing, nil), "executables", strings.Join(missing, ", "))
	}

	outcome, err := o.runner.Run(domain.ProcessSpec{Executable: ConfigureExecutable, Args: []string{"--version"}})
	if err == nil && outcome.Succeeded() {
		version, _, _ := strings.Cut(strings.TrimSpace(string(outcome.Stdout)), "\n")
		if version != "" {
			o.logger.Info(version)
		}
	}

	host, err := o.platforms.DetectHost()
	if err != nil {
		return err
	}

	switch {
	case platform == domain.Windows && host == domain.Linux:
		if _, err := o.runner.LookPath(WindowsRunner); err != nil {
			o.logger.Warn(WindowsRunner + " not found, --run is unavailable for Windows builds")
		}
	case platform == domain.Switch:
		if os.Getenv(SwitchSDKEnv) == "" {
			return zerr.With(domain.Fail(domain.ErrDependencyMissing, nil), "env", SwitchSDKEnv)
		}
	}

	o.logger.Success(fmt.Sprintf("build dependencies for %s found", platform))
	return nil
}
