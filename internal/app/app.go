// Package app implements the application layer for vtrg.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/vtrg/internal/ui/output"
	"go.trai.ch/zerr"
)

// Engine runs builds and cleans for the App.
type Engine interface {
	Build(ctx context.Context, layout domain.Layout, req domain.BuildRequest) (domain.BuildResult, error)
	Clean(ctx context.Context, req domain.CleanRequest) (domain.CleanReport, error)
	RunExecutable(ctx context.Context, path string, platform domain.Platform) (int, error)
	CheckDependencies(ctx context.Context, platform domain.Platform) error
}

// App represents the main application logic.
type App struct {
	projects  ports.ProjectLoader
	settings  ports.SettingsStore
	platforms ports.PlatformResolver
	engine    Engine
	formatter ports.Formatter
	logger    ports.Logger
	workDir   string
}

// New creates a new App instance.
func New(
	projects ports.ProjectLoader,
	settings ports.SettingsStore,
	platforms ports.PlatformResolver,
	engine Engine,
	formatter ports.Formatter,
	log ports.Logger,
) *App {
	return &App{
		projects:  projects,
		settings:  settings,
		platforms: platforms,
		engine:    engine,
		formatter: formatter,
		logger:    log,
	}
}

// WithWorkDir makes the App discover the project from dir instead of the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	Verbose bool
	NoColor bool
}

// Prepare applies the global flags and the general.color_output setting to the logger.
func (a *App) Prepare(opts GlobalOptions) {
	a.logger.SetVerbose(opts.Verbose)

	color := !opts.NoColor
	if enabled, ok := a.boolSetting(domain.SettingColorOutput); ok && !enabled {
		color = false
	}
	a.logger.SetColor(color)
	output.SetColorEnabled(color)
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Sample    string
	Sandbox   bool
	Module    string
	Platform  string
	Debug     bool
	Release   bool
	CleanDir  string
	Run       bool
	CheckDeps bool
}

func (o BuildOptions) target() (domain.BuildTarget, error) {
	switch {
	case o.Sample != "" && o.Sandbox:
		return domain.BuildTarget{}, usageError("--sample and --sandbox are mutually exclusive")
	case o.Module != "" && (o.Sample != "" || o.Sandbox):
		return domain.BuildTarget{}, usageError("--target only applies to engine builds")
	case o.Sample != "":
		return domain.SampleTarget(o.Sample)
	case o.Sandbox:
		return domain.SandboxTarget(), nil
	default:
		if o.Run {
			return domain.BuildTarget{}, errors.Join(domain.ErrInvalidUsage, domain.ErrNothingToRun)
		}
		return domain.InternalTarget(o.Module), nil
	}
}

// Build builds the selected target and optionally runs it.
// The returned exit code is the executable's when opts.Run is set, otherwise 0 on success.
func (a *App) Build(ctx context.Context, opts BuildOptions) (int, error) {
	target, err := opts.target()
	if err != nil {
		return 1, err
	}

	layout, err := a.loadLayout()
	if err != nil {
		return 1, err
	}

	req := domain.BuildRequest{
		Target:     target,
		Platform:   a.requestedPlatform(opts.Platform),
		BuildType:  a.buildType(opts),
		CleanDir:   a.resolvePath(opts.CleanDir),
		Jobs:       a.parallelJobs(),
		ShowOutput: a.showBuildOutput(),
	}

	if opts.CheckDeps {
		platform, err := a.platforms.Resolve(req.Platform)
		if err != nil {
			return 1, err
		}
		if err := a.engine.CheckDependencies(ctx, platform); err != nil {
			return 1, err
		}
	}

	result, err := a.engine.Build(ctx, layout, req)
	if err != nil {
		return 1, err
	}
	a.logger.Success(fmt.Sprintf("built %s for %s (%s) in %s", target, result.Platform, req.BuildType, result.OutputDir))

	if !opts.Run {
		return 0, nil
	}
	return a.engine.RunExecutable(ctx, result.Executable, result.Platform)
}

func (a *App) loadLayout() (domain.Layout, error) {
	cwd := a.workDir
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return domain.Layout{}, zerr.Wrap(err, "failed to get working directory")
		}
	}
	return a.projects.Load(cwd)
}

// resolvePath makes a relative path from the command line relative to the
// working directory. Empty paths stay empty.
func (a *App) resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || a.workDir == "" {
		return path
	}
	return filepath.Join(a.workDir, path)
}

func (a *App) requestedPlatform(flag string) string {
	if flag != "" {
		return flag
	}
	if name, ok := a.stringSetting(domain.SettingDefaultPlatform); ok {
		return name
	}
	return ""
}

func (a *App) buildType(opts BuildOptions) domain.BuildType {
	switch {
	case opts.Debug && opts.Release:
		a.logger.Warn("both --debug and --release given, building Debug")
		return domain.Debug
	case opts.Debug:
		return domain.Debug
	case opts.Release:
		return domain.Release
	}
	name, _ := a.stringSetting(domain.SettingDefaultBuildType)
	return domain.ParseBuildType(name)
}

// parallelJobs reads build.parallel_jobs. "auto" and invalid values use the CPU count.
func (a *App) parallelJobs() int {
	value, err := a.settings.Get(domain.SettingParallelJobs)
	if err != nil {
		return runtime.NumCPU()
	}

	switch v := value.(type) {
	case int:
		if v > 0 {
			return v
		}
	case float64:
		if v >= 1 {
			return int(v)
		}
	case string:
		if strings.EqualFold(v, "auto") || v == "" {
			return runtime.NumCPU()
		}
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}

	a.logger.Warn(fmt.Sprintf("invalid %s value %v, using %d", domain.SettingParallelJobs, value, runtime.NumCPU()))
	return runtime.NumCPU()
}

func (a *App) showBuildOutput() bool {
	show, _ := a.boolSetting(domain.SettingShowBuildOutput)
	return show
}

func (a *App) stringSetting(key string) (string, bool) {
	value, err := a.settings.Get(key)
	if err != nil {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

func (a *App) boolSetting(key string) (bool, bool) {
	value, err := a.settings.Get(key)
	if err != nil {
		return false, false
	}
	b, ok := value.(bool)
	return b, ok
}

func (a *App) stringsSetting(key string) []string {
	value, err := a.settings.Get(key)
	if err != nil {
		return nil
	}

	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

func usageError(msg string) error {
	return errors.Join(domain.ErrInvalidUsage, zerr.New(msg))
}
