// Package orchestrator drives the configure, compile and finalize steps of an engine build.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/vtrg/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// ConfigureExecutable is the build system generator.
	ConfigureExecutable = "cmake"
	// CompileExecutable is the build driver invoked in the output directory.
	CompileExecutable = "make"
	// Generator is the CMake generator matching CompileExecutable.
	Generator = "Unix Makefiles"
)

type crossPair struct {
	host   domain.Platform
	target domain.Platform
}

// crossToolchains maps supported host/target pairs to their CMake toolchain file.
var crossToolchains = map[crossPair]string{
	{host: domain.Linux, target: domain.Windows}: domain.WindowsToolchainFile,
}

// Orchestrator runs builds, cleans and executables through a ports.ProcessRunner.
type Orchestrator struct {
	runner    ports.ProcessRunner
	progress  ports.ProgressIndicator
	platforms ports.PlatformResolver
	logger    ports.Logger
}

// New creates an Orchestrator.
func New(
	runner ports.ProcessRunner,
	progress ports.ProgressIndicator,
	platforms ports.PlatformResolver,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		runner:    runner,
		progress:  progress,
		platforms: platforms,
		logger:    logger,
	}
}

type buildPlan struct {
	host      domain.Platform
	platform  domain.Platform
	toolchain string
	sourceDir string
	outputDir string
}

// Build resolves, configures, compiles and finalizes req.Target.
// Nothing is spawned until the resolve step has succeeded, and a failing step
// skips every step after it.
func (o *Orchestrator) Build(ctx context.Context, layout domain.Layout, req domain.BuildRequest) (domain.BuildResult, error) {
	steps := newStepReporter(o.logger)
	defer steps.finish()

	plan, err := o.resolve(layout, req)
	if err != nil {
		steps.fail(domain.StepResolve)
		return domain.BuildResult{}, err
	}
	steps.succeed(domain.StepResolve, fmt.Sprintf("%s for %s on %s", req.Target, plan.platform, plan.host))

	if err := o.prepare(ctx, layout, req.CleanDir, plan.outputDir); err != nil {
		steps.fail(domain.StepConfigure)
		return domain.BuildResult{}, err
	}

	buildType := req.BuildType
	if buildType == "" {
		buildType = domain.Release
	}

	if err := o.runStep(ctx, steps, domain.StepConfigure, domain.ProcessSpec{
		Executable: ConfigureExecutable,
		Args:       ConfigureArgs(plan.platform, buildType, plan.toolchain, plan.sourceDir),
		Dir:        plan.outputDir,
	}, req.ShowOutput, domain.ErrConfigureFailed); err != nil {
		return domain.BuildResult{}, err
	}

	module := ""
	if req.Target.Kind == domain.TargetInternal {
		module = req.Target.Name
	}

	if err := o.runStep(ctx, steps, domain.StepCompile, domain.ProcessSpec{
		Executable: CompileExecutable,
		Args:       CompileArgs(req.Jobs, module),
		Dir:        plan.outputDir,
	}, req.ShowOutput, domain.ErrCompileFailed); err != nil {
		return domain.BuildResult{}, err
	}

	copied, err := o.finalize(layout, req.Target, plan.outputDir)
	if err != nil {
		steps.fail(domain.StepFinalize)
		return domain.BuildResult{}, err
	}
	steps.succeed(domain.StepFinalize, fmt.Sprintf("copied %d resource directories into %s", copied, plan.outputDir))

	return domain.BuildResult{
		Platform:   plan.platform,
		OutputDir:  plan.outputDir,
		Executable: layout.ExecutablePath(req.Target, plan.platform),
	}, nil
}

func (o *Orchestrator) resolve(layout domain.Layout, req domain.BuildRequest) (buildPlan, error) {
	host, err := o.platforms.DetectHost()
	if err != nil {
		return buildPlan{}, err
	}

	platform, err := o.platforms.Resolve(req.Platform)
	if err != nil {
		return buildPlan{}, err
	}

	if req.Target.Kind == domain.TargetSample && !domain.IsKnownSample(req.Target.Name) {
		return buildPlan{}, zerr.With(domain.Fail(domain.ErrUnknownSample, nil), "sample", req.Target.Name)
	}

	toolchain, err := ToolchainFor(layout, host, platform)
	if err != nil {
		return buildPlan{}, err
	}

	sourceDir := layout.SourceDir(req.Target)
	if info, err := os.Stat(sourceDir); err != nil || !info.IsDir() {
		return buildPlan{}, zerr.With(domain.Fail(domain.ErrSourceDirNotFound, nil), "path", sourceDir)
	}

	return buildPlan{
		host:      host,
		platform:  platform,
		toolchain: toolchain,
		sourceDir: sourceDir,
		outputDir: layout.OutputDir(req.Target, platform),
	}, nil
}

// ToolchainFor returns the CMake toolchain file needed to build target on host.
// Native builds need none. Unmapped host/target pairs fail instead of falling
// back to the native compiler.
func ToolchainFor(layout domain.Layout, host, target domain.Platform) (string, error) {
	if host == target {
		return "", nil
	}

	name, ok := crossToolchains[crossPair{host: host, target: target}]
	if !ok {
		return "", zerr.With(zerr.With(domain.Fail(domain.ErrNoCrossToolchain, nil), "host", host.String()), "target", target.String())
	}

	path := layout.ToolchainFile(name)
	if _, err := os.Stat(path); err != nil {
		return "", zerr.With(domain.Fail(domain.ErrToolchainNotFound, nil), "path", path)
	}
	return path, nil
}

// ConfigureArgs builds the generator arguments for one configure step.
func ConfigureArgs(platform domain.Platform, buildType domain.BuildType, toolchain, sourceDir string) []string {
	args := []string{
		"-DPLATFORM=" + platform.String(),
		"-DCMAKE_BUILD_TYPE=" + string(buildType),
	}
	if toolchain != "" {
		args = append(args, "-DCMAKE_TOOLCHAIN_FILE="+toolchain)
	}
	return append(args, "-G", Generator, sourceDir)
}

// CompileArgs builds the build driver arguments. A positive jobs value sets the parallelism
// and a non-empty module restricts the build to that target.
func CompileArgs(jobs int, module string) []string {
	var args []string
	if jobs > 0 {
		args = append(args, "-j"+strconv.Itoa(jobs))
	}
	if module != "" {
		args = append(args, module)
	}
	return args
}

func (o *Orchestrator) prepare(ctx context.Context, layout domain.Layout, cleanDir, outputDir string) error {
	if cleanDir != "" {
		req := domain.CleanRequest{
			Path:      cleanDir,
			Known:     layout.InBuildDir(cleanDir),
			Protected: layout.ProtectedDirs(),
		}
		if _, err := o.Clean(ctx, req); err != nil {
			o.logger.Warn(fmt.Sprintf("pre-build clean of %s failed, continuing", cleanDir))
			o.logger.Error(err)
		}
	}

	if err := os.MkdirAll(outputDir, domain.DirPerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrOutputDirCreateFailed, err), "path", outputDir)
	}
	return nil
}

// runStep spawns spec, tracks it with the progress indicator and waits for it to exit.
func (o *Orchestrator) runStep(
	ctx context.Context,
	steps *stepReporter,
	step domain.Step,
	spec domain.ProcessSpec,
	showOutput bool,
	failure error,
) error {
	o.logger.Debug(fmt.Sprintf("%s: %s %s", step, spec.Executable, strings.Join(spec.Args, " ")))

	handle, err := o.runner.Start(spec)
	if err != nil {
		steps.fail(step)
		return err
	}
	steps.tracked(step)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		o.progress.Track(gctx, string(step), handle)
		return nil
	})
	outcome := handle.Wait()
	_ = g.Wait()

	o.logOutput(outcome.Stdout, showOutput)

	if !outcome.Succeeded() {
		return processFailure(failure, spec, outcome)
	}
	return nil
}

func (o *Orchestrator) logOutput(stdout []byte, show bool) {
	text := strings.TrimRight(string(stdout), "\r\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		if show {
			o.logger.Info(line)
		} else {
			o.logger.Debug(line)
		}
	}
}

// processFailure wraps the diagnostics of a failed process with sentinel.
func processFailure(sentinel error, spec domain.ProcessSpec, outcome domain.ProcessOutcome) error {
	diag := outcome.Diagnostics()
	if diag == "" {
		diag = fmt.Sprintf("%s exited with code %d", spec.Executable, outcome.ExitCode)
	}
	err := domain.Fail(sentinel, errors.New(diag))
	return zerr.With(err, "exit_code", outcome.ExitCode)
}

func (o *Orchestrator) finalize(layout domain.Layout, target domain.BuildTarget, outputDir string) (int, error) {
	copied, err := copyResources(layout, outputDir, o.logger)
	if err != nil {
		return copied, err
	}

	if err := collectHeaders(layout.EngineSourceDir(), layout.IncludeDir()); err != nil {
		return copied, err
	}
	o.logger.Debug(fmt.Sprintf("collected engine headers into %s after %s build", layout.IncludeDir(), target))
	return copied, nil
}

// stepReporter writes one status line per build step.
type stepReporter struct {
	logger   ports.Logger
	reported map[domain.Step]bool
}

func newStepReporter(logger ports.Logger) *stepReporter {
	return &stepReporter{logger: logger, reported: make(map[domain.Step]bool)}
}

func (r *stepReporter) succeed(step domain.Step, detail string) {
	r.reported[step] = true
	r.logger.Success(fmt.Sprintf("[%s] %s", step, detail))
}

func (r *stepReporter) fail(step domain.Step) {
	r.reported[step] = true
	r.logger.Warn(fmt.Sprintf("[%s] failed", step))
}

// tracked marks a step whose status line is written by the progress indicator.
func (r *stepReporter) tracked(step domain.Step) {
	r.reported[step] = true
}

func (r *stepReporter) finish() {
	for _, step := range domain.Steps() {
		if !r.reported[step] {
			r.logger.Info(fmt.Sprintf("%s [%s] skipped", style.Tilde, step))
		}
	}
}
