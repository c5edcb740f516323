package orchestrator

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/zerr"
)

// WindowsRunner is the compatibility layer used to launch Windows binaries on Linux.
const WindowsRunner = "wine"

// RunExecutable launches the built executable at path interactively and returns its exit code.
// Windows binaries run through WindowsRunner on a Linux host. Other foreign
// platforms cannot be launched.
func (o *Orchestrator) RunExecutable(_ context.Context, path string, platform domain.Platform) (int, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if info, err := os.Stat(abs); err != nil || info.IsDir() {
		return 1, zerr.With(domain.Fail(domain.ErrExecutableNotFound, nil), "path", abs)
	}

	host, err := o.platforms.DetectHost()
	if err != nil {
		return 1, err
	}

	spec := domain.ProcessSpec{Executable: abs, Dir: filepath.Dir(abs), Interactive: true}
	switch {
	case host == platform:
	case host == domain.Linux && platform == domain.Windows:
		runner, err := o.runner.LookPath(WindowsRunner)
		if err != nil {
			return 1, zerr.With(domain.Fail(domain.ErrDependencyMissing, err), "executable", WindowsRunner)
		}
		spec.Executable = runner
		spec.Args = []string{abs}
	default:
		return 1, zerr.With(zerr.With(domain.Fail(domain.ErrNoCrossRunner, nil), "host", host.String()), "target", platform.String())
	}

	o.logger.Info("running " + abs)
	outcome, err := o.runner.Run(spec)
	if err != nil {
		return 1, err
	}
	return outcome.ExitCode, nil
}
