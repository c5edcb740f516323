// Package shell provides the process runner adapter.
package shell

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// LookPath resolves name against the PATH of the current environment.
func (r *Runner) LookPath(name string) (string, error) {
	return resolveExecutable(name, "", os.Environ())
}

// Start spawns the process described by spec.
// The environment is os.Environ() overlaid with spec.Env; a PATH in spec.Env is
// prepended to the system PATH.
func (r *Runner) Start(spec domain.ProcessSpec) (ports.ProcessHandle, error) {
	env := resolveEnvironment(os.Environ(), spec.Env)

	executable, err := resolveExecutable(spec.Executable, spec.Dir, env)
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrProcessLaunch, err), "executable", spec.Executable)
	}

	cmd := exec.Command(executable, spec.Args...) //nolint:gosec // toolchain commands are built by the orchestrator

	// Keep the name as invoked in Args[0].
	if len(cmd.Args) > 0 {
		cmd.Args[0] = spec.Executable
	}

	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	cmd.Env = env

	h := newHandle()
	if spec.Interactive {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &h.stdout
		cmd.Stderr = &h.stderr
	}

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrProcessLaunch, err), "executable", spec.Executable)
	}

	go h.wait(cmd)

	return h, nil
}

// Run starts the process and blocks until it exits.
func (r *Runner) Run(spec domain.ProcessSpec) (domain.ProcessOutcome, error) {
	h, err := r.Start(spec)
	if err != nil {
		return domain.ProcessOutcome{}, err
	}
	return h.Wait(), nil
}

// exitCode extracts the exit code from the error returned by exec.Cmd.Wait.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// resolveExecutable finds name using the PATH in env.
// Names containing a path separator are checked directly; a relative one is
// checked against dir, where the child will run, and returned unchanged.
func resolveExecutable(name, dir string, env []string) (string, error) {
	if name == "" {
		return "", exec.ErrNotFound
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		candidate := name
		if dir != "" && !filepath.IsAbs(name) {
			candidate = filepath.Join(dir, name)
		}
		if err := findExecutable(candidate); err != nil {
			return "", err
		}
		return name, nil
	}
	return lookPath(name, env)
}

// resolveEnvironment merges the system environment with the process overrides.
func resolveEnvironment(sysEnv, extraEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(extraEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for _, entry := range extraEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
				continue
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

var _ ports.ProcessRunner = (*Runner)(nil)
