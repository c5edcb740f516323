package orchestrator_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vtrg/internal/adapters/logger"
	"go.trai.ch/vtrg/internal/adapters/platform"
	"go.trai.ch/vtrg/internal/adapters/progress"
	"go.trai.ch/vtrg/internal/adapters/shell"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports/mocks"
	"go.trai.ch/vtrg/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

// exitedHandle is a process handle that has already finished.
type exitedHandle struct {
	outcome domain.ProcessOutcome
	done    chan struct{}
}

func newExitedHandle(outcome domain.ProcessOutcome) *exitedHandle {
	done := make(chan struct{})
	close(done)
	return &exitedHandle{outcome: outcome, done: done}
}

func (h *exitedHandle) Poll() (int, bool) { return h.outcome.ExitCode, true }

func (h *exitedHandle) Done() <-chan struct{} { return h.done }

func (h *exitedHandle) Wait() domain.ProcessOutcome { return h.outcome }

type fixture struct {
	runner   *mocks.MockProcessRunner
	progress *mocks.MockProgressIndicator
	logs     *bytes.Buffer
	log      *logger.Logger
	orch     *orchestrator.Orchestrator
	layout   domain.Layout
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	f := &fixture{
		runner:   mocks.NewMockProcessRunner(ctrl),
		progress: mocks.NewMockProgressIndicator(ctrl),
		logs:     &bytes.Buffer{},
		layout:   domain.DefaultLayout(t.TempDir()),
	}
	f.log = logger.NewWithWriter(f.logs)
	f.log.SetColor(false)
	f.orch = orchestrator.New(f.runner, f.progress, platform.NewResolverFor("linux"), f.log)

	mkdir(t, f.layout.EngineSourceDir())
	return f
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o750))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	mkdir(t, filepath.Dir(path))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// clean removes path the way the app layer asks for it.
func (f *fixture) clean(path string, dryRun bool) (domain.CleanReport, error) {
	return f.orch.Clean(context.Background(), domain.CleanRequest{
		Path:      path,
		DryRun:    dryRun,
		Known:     f.layout.InBuildDir(path),
		Protected: f.layout.ProtectedDirs(),
	})
}

func (f *fixture) expectStep(spec domain.ProcessSpec, label string, outcome domain.ProcessOutcome) *gomock.Call {
	call := f.runner.EXPECT().Start(spec).Return(newExitedHandle(outcome), nil)
	f.progress.EXPECT().Track(gomock.Any(), label, gomock.Any())
	return call
}

func TestBuild_NativeSample(t *testing.T) {
	f := newFixture(t)
	target, err := domain.SampleTarget("Template")
	require.NoError(t, err)

	sourceDir := filepath.Join(f.layout.Root, "Samples", "Template")
	mkdir(t, sourceDir)
	writeFile(t, filepath.Join(f.layout.ResourceRoot(), "resources", "textures", "logo.png"), "png")
	writeFile(t, filepath.Join(f.layout.EngineSourceDir(), "Core", "Core.hpp"), "#pragma once\n")
	outputDir := filepath.Join(sourceDir, "build", "Linux")

	gomock.InOrder(
		f.expectStep(domain.ProcessSpec{
			Executable: "cmake",
			Args: []string{
				"-DPLATFORM=Linux", "-DCMAKE_BUILD_TYPE=Debug",
				"-G", "Unix Makefiles", sourceDir,
			},
			Dir: outputDir,
		}, "configure", domain.ProcessOutcome{}),
		f.expectStep(domain.ProcessSpec{
			Executable: "make",
			Args:       []string{"-j4"},
			Dir:        outputDir,
		}, "compile", domain.ProcessOutcome{}),
	)

	result, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{
		Target:    target,
		BuildType: domain.Debug,
		Jobs:      4,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Linux, result.Platform)
	assert.Equal(t, outputDir, result.OutputDir)
	assert.Equal(t, filepath.Join(outputDir, "Template"), result.Executable)
	assert.FileExists(t, filepath.Join(outputDir, "resources", "textures", "logo.png"))
	assert.FileExists(t, filepath.Join(f.layout.IncludeDir(), "Core", "Core.hpp"))

	logs := f.logs.String()
	assert.Contains(t, logs, "[resolve] sample Template for Linux on Linux")
	assert.Contains(t, logs, "resource directory")
	assert.Contains(t, logs, "[finalize] copied 1 resource directories")
	assert.NotContains(t, logs, "skipped")
}

func TestBuild_DefaultsToRelease(t *testing.T) {
	f := newFixture(t)
	outputDir := filepath.Join(f.layout.Root, "Build", "Linux")

	f.expectStep(domain.ProcessSpec{
		Executable: "cmake",
		Args: []string{
			"-DPLATFORM=Linux", "-DCMAKE_BUILD_TYPE=Release",
			"-G", "Unix Makefiles", f.layout.EngineSourceDir(),
		},
		Dir: outputDir,
	}, "configure", domain.ProcessOutcome{})
	f.expectStep(domain.ProcessSpec{Executable: "make", Dir: outputDir}, "compile", domain.ProcessOutcome{})

	result, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{Target: domain.InternalTarget("")})
	require.NoError(t, err)
	assert.Empty(t, result.Executable)
}

func TestBuild_CrossCompileUsesToolchain(t *testing.T) {
	f := newFixture(t)
	toolchain := f.layout.ToolchainFile(domain.WindowsToolchainFile)
	writeFile(t, toolchain, "set(CMAKE_SYSTEM_NAME Windows)\n")
	sourceDir := f.layout.SourceDir(domain.SandboxTarget())
	mkdir(t, sourceDir)
	outputDir := filepath.Join(f.layout.Root, "Sandbox", "build", "Windows")

	f.expectStep(domain.ProcessSpec{
		Executable: "cmake",
		Args: []string{
			"-DPLATFORM=Windows", "-DCMAKE_BUILD_TYPE=Release",
			"-DCMAKE_TOOLCHAIN_FILE=" + toolchain,
			"-G", "Unix Makefiles", sourceDir,
		},
		Dir: outputDir,
	}, "configure", domain.ProcessOutcome{})
	f.expectStep(domain.ProcessSpec{Executable: "make", Dir: outputDir}, "compile", domain.ProcessOutcome{})

	result, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{
		Target:    domain.SandboxTarget(),
		Platform:  "Windows",
		BuildType: domain.Release,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "Sandbox.exe"), result.Executable)
}

func TestBuild_FailsBeforeSpawning(t *testing.T) {
	tests := []struct {
		name    string
		request domain.BuildRequest
		wantErr error
	}{
		{
			name:    "missing cross toolchain file",
			request: domain.BuildRequest{Target: domain.InternalTarget(""), Platform: "Windows"},
			wantErr: domain.ErrToolchainNotFound,
		},
		{
			name:    "no toolchain for platform",
			request: domain.BuildRequest{Target: domain.InternalTarget(""), Platform: "Switch"},
			wantErr: domain.ErrNoCrossToolchain,
		},
		{
			name:    "unsupported platform",
			request: domain.BuildRequest{Target: domain.InternalTarget(""), Platform: "linux"},
			wantErr: domain.ErrUnsupportedPlatform,
		},
		{
			name:    "unknown sample",
			request: domain.BuildRequest{Target: domain.BuildTarget{Kind: domain.TargetSample, Name: "Nope"}},
			wantErr: domain.ErrUnknownSample,
		},
		{
			name:    "missing source directory",
			request: domain.BuildRequest{Target: domain.SandboxTarget()},
			wantErr: domain.ErrSourceDirNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.orch.Build(context.Background(), f.layout, tt.request)
			require.ErrorIs(t, err, tt.wantErr)

			logs := f.logs.String()
			assert.Contains(t, logs, "[resolve] failed")
			assert.Contains(t, logs, "[configure] skipped")
			assert.Contains(t, logs, "[compile] skipped")
			assert.Contains(t, logs, "[finalize] skipped")
			assert.NoDirExists(t, filepath.Join(f.layout.Root, "Build"))
		})
	}
}

func TestBuild_ConfigureFailureSkipsCompile(t *testing.T) {
	f := newFixture(t)
	outputDir := filepath.Join(f.layout.Root, "Build", "Linux")

	f.expectStep(domain.ProcessSpec{
		Executable: "cmake",
		Args: []string{
			"-DPLATFORM=Linux", "-DCMAKE_BUILD_TYPE=Release",
			"-G", "Unix Makefiles", f.layout.EngineSourceDir(),
		},
		Dir: outputDir,
	}, "configure", domain.ProcessOutcome{
		ExitCode: 1,
		Stdout:   []byte("-- Configuring incomplete\n"),
		Stderr:   []byte("CMake Error: missing CMakeLists.txt\n"),
	})

	_, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{Target: domain.InternalTarget("")})
	require.ErrorIs(t, err, domain.ErrConfigureFailed)

	f.log.Error(err)
	logs := f.logs.String()
	assert.Contains(t, logs, "CMake Error: missing CMakeLists.txt")
	assert.Contains(t, logs, "[compile] skipped")
	assert.Contains(t, logs, "[finalize] skipped")
	assert.NotContains(t, logs, "[configure] skipped")
}

func TestBuild_CompileFailureUsesStdoutWhenStderrEmpty(t *testing.T) {
	f := newFixture(t)
	outputDir := filepath.Join(f.layout.Root, "Build", "Linux")

	f.runner.EXPECT().Start(gomock.Any()).Return(newExitedHandle(domain.ProcessOutcome{}), nil)
	f.progress.EXPECT().Track(gomock.Any(), "configure", gomock.Any())
	f.expectStep(domain.ProcessSpec{Executable: "make", Dir: outputDir}, "compile", domain.ProcessOutcome{
		ExitCode: 2,
		Stdout:   []byte("Core.cpp:1:1: error: expected unqualified-id\n"),
	})

	_, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{Target: domain.InternalTarget("")})
	require.ErrorIs(t, err, domain.ErrCompileFailed)
	assert.Contains(t, f.logs.String(), "[finalize] skipped")

	f.log.Error(err)
	assert.Contains(t, f.logs.String(), "expected unqualified-id")
}

func TestBuild_LaunchFailure(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().Start(gomock.Any()).Return(nil, domain.ErrProcessLaunch)

	_, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{Target: domain.InternalTarget("")})
	require.ErrorIs(t, err, domain.ErrProcessLaunch)

	logs := f.logs.String()
	assert.Contains(t, logs, "[configure] failed")
	assert.Contains(t, logs, "[compile] skipped")
}

// stubPath replaces PATH with a directory holding the given shell scripts.
func stubPath(t *testing.T, scripts map[string]string) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("toolchain stubs are shell scripts")
	}

	bin := t.TempDir()
	for name, body := range scripts {
		//nolint:gosec // test scripts must be executable
		require.NoError(t, os.WriteFile(filepath.Join(bin, name), []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	}
	t.Setenv("PATH", bin)
}

func newRealOrchestrator(t *testing.T, log *logger.Logger) *orchestrator.Orchestrator {
	t.Helper()
	return orchestrator.New(shell.NewRunner(), progress.NewIndicator(io.Discard), platform.NewResolverFor("linux"), log)
}

func TestBuild_CompileFailureMatchesSentinel(t *testing.T) {
	stubPath(t, map[string]string{
		"cmake": "exit 0",
		"make":  "echo 'Core.cpp:3:1: error: unknown type name' >&2\nexit 2",
	})
	f := newFixture(t)

	_, err := newRealOrchestrator(t, f.log).Build(context.Background(), f.layout, domain.BuildRequest{
		Target: domain.InternalTarget(""),
	})
	require.ErrorIs(t, err, domain.ErrCompileFailed)
	assert.NotErrorIs(t, err, domain.ErrConfigureFailed)
	assert.ErrorContains(t, err, "unknown type name")

	f.log.Error(err)
	logs := f.logs.String()
	assert.Contains(t, logs, domain.ErrCompileFailed.Error())
	assert.Contains(t, logs, "Core.cpp:3:1: error: unknown type name")
	assert.Contains(t, logs, "[finalize] skipped")
}

func TestBuild_MissingDriverMatchesLaunchSentinel(t *testing.T) {
	stubPath(t, map[string]string{})
	f := newFixture(t)

	_, err := newRealOrchestrator(t, f.log).Build(context.Background(), f.layout, domain.BuildRequest{
		Target: domain.InternalTarget(""),
	})
	require.ErrorIs(t, err, domain.ErrProcessLaunch)
	assert.Contains(t, f.logs.String(), "[compile] skipped")
}

func TestBuild_EngineModuleCollectsHeaders(t *testing.T) {
	f := newFixture(t)
	source := f.layout.EngineSourceDir()
	writeFile(t, filepath.Join(source, "Core", "Core.hpp"), "#pragma once\n")
	writeFile(t, filepath.Join(source, "Core", "Types.h"), "#pragma once\n")
	writeFile(t, filepath.Join(source, "Core", "Core.cpp"), "int x;\n")
	outputDir := filepath.Join(f.layout.Root, "Build", "Linux")

	f.runner.EXPECT().Start(gomock.Any()).Return(newExitedHandle(domain.ProcessOutcome{}), nil)
	f.progress.EXPECT().Track(gomock.Any(), "configure", gomock.Any())
	f.expectStep(domain.ProcessSpec{
		Executable: "make",
		Args:       []string{"-j2", "Core"},
		Dir:        outputDir,
	}, "compile", domain.ProcessOutcome{Stdout: []byte("[100%] Built target Core\n")})

	_, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{
		Target:     domain.InternalTarget("Core"),
		Jobs:       2,
		ShowOutput: true,
	})
	require.NoError(t, err)

	include := f.layout.IncludeDir()
	assert.FileExists(t, filepath.Join(include, "Core", "Core.hpp"))
	assert.FileExists(t, filepath.Join(include, "Core", "Types.h"))
	assert.NoFileExists(t, filepath.Join(include, "Core", "Core.cpp"))
	assert.Contains(t, f.logs.String(), "Built target Core")
}

func TestBuild_CleansBeforeConfigure(t *testing.T) {
	f := newFixture(t)
	stale := filepath.Join(f.layout.Root, "Build", "Linux")
	writeFile(t, filepath.Join(stale, "stale.o"), "obj")

	f.runner.EXPECT().Start(gomock.Any()).Return(newExitedHandle(domain.ProcessOutcome{}), nil).Times(2)
	f.progress.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	_, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{
		Target:   domain.InternalTarget(""),
		CleanDir: stale,
	})
	require.NoError(t, err)
	assert.DirExists(t, stale)
	assert.NoFileExists(t, filepath.Join(stale, "stale.o"))
}

func TestToolchainFor(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())
	writeFile(t, layout.ToolchainFile(domain.WindowsToolchainFile), "")

	path, err := orchestrator.ToolchainFor(layout, domain.Linux, domain.Linux)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = orchestrator.ToolchainFor(layout, domain.Linux, domain.Windows)
	require.NoError(t, err)
	assert.Equal(t, layout.ToolchainFile(domain.WindowsToolchainFile), path)

	for _, pair := range [][2]domain.Platform{
		{domain.Windows, domain.Linux},
		{domain.Linux, domain.Switch},
		{domain.Windows, domain.Switch},
	} {
		_, err := orchestrator.ToolchainFor(layout, pair[0], pair[1])
		assert.ErrorIs(t, err, domain.ErrNoCrossToolchain, "%s -> %s", pair[0], pair[1])
	}
}

func TestCompileArgs(t *testing.T) {
	assert.Nil(t, orchestrator.CompileArgs(0, ""))
	assert.Equal(t, []string{"-j8"}, orchestrator.CompileArgs(8, ""))
	assert.Equal(t, []string{"Renderer"}, orchestrator.CompileArgs(-1, "Renderer"))
}

func TestClean_MissingPathIsNoop(t *testing.T) {
	f := newFixture(t)

	report, err := f.clean(filepath.Join(f.layout.Root, "absent"), false)
	require.NoError(t, err)
	assert.Empty(t, report.Removed)
	assert.Contains(t, f.logs.String(), "nothing to clean")
}

func TestClean_RejectsFile(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(f.layout.Root, "file.txt")
	writeFile(t, path, "x")

	_, err := f.clean(path, false)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrNotADirectory)
	assert.FileExists(t, path)
}

func TestClean_RemovesDirectoryAndIsIdempotent(t *testing.T) {
	f := newFixture(t)
	dir := filepath.Join(f.layout.Root, "Build", "Linux")
	writeFile(t, filepath.Join(dir, "obj", "a.o"), "obj")

	report, err := f.clean(dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, report.Removed)
	assert.Empty(t, report.Commands)
	assert.NoDirExists(t, dir)

	_, err = f.clean(dir, false)
	require.NoError(t, err)
}

func TestClean_RunsDriverCleanFirst(t *testing.T) {
	f := newFixture(t)
	dir := filepath.Join(f.layout.Root, "Build", "Linux")
	writeFile(t, filepath.Join(dir, "Makefile"), "clean:\n")

	f.runner.EXPECT().
		Run(domain.ProcessSpec{Executable: "make", Args: []string{"clean"}, Dir: dir}).
		Return(domain.ProcessOutcome{}, nil)

	report, err := f.clean(dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"make clean"}, report.Commands)
	assert.NoDirExists(t, dir)
}

func TestClean_DriverFailureIsReportedNotRaised(t *testing.T) {
	f := newFixture(t)
	dir := filepath.Join(f.layout.Root, "Build", "Linux")
	writeFile(t, filepath.Join(dir, "Makefile"), "")

	f.runner.EXPECT().Run(gomock.Any()).Return(domain.ProcessOutcome{
		ExitCode: 2,
		Stderr:   []byte("make: *** No rule to make target 'clean'.  Stop.\n"),
	}, nil)

	_, err := f.clean(dir, false)
	require.NoError(t, err)
	assert.NoDirExists(t, dir)
	assert.Contains(t, f.logs.String(), "No rule to make target")
}

func TestClean_DryRunMutatesNothing(t *testing.T) {
	f := newFixture(t)
	dir := filepath.Join(f.layout.Root, "Build", "Linux")
	writeFile(t, filepath.Join(dir, "Makefile"), "")

	report, err := f.clean(dir, true)
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, []string{dir}, report.Removed)
	assert.Equal(t, []string{"make clean"}, report.Commands)
	assert.FileExists(t, filepath.Join(dir, "Makefile"))
	assert.Contains(t, f.logs.String(), "would remove "+dir)
}

func TestClean_RefusesProtectedDirectories(t *testing.T) {
	f := newFixture(t)
	source := filepath.Join(f.layout.EngineSourceDir(), "engine.cpp")
	writeFile(t, source, "int main() {}\n")
	sample := filepath.Join(f.layout.Root, "Samples", "Template")
	writeFile(t, filepath.Join(sample, "Template.cpp"), "int main() {}\n")
	writeFile(t, filepath.Join(sample, "build", "Linux", "Makefile"), "")

	for _, dir := range []string{
		f.layout.Root,
		filepath.Join(f.layout.Root, "Vantor"),
		f.layout.EngineSourceDir(),
		filepath.Join(f.layout.Root, "Samples"),
		sample,
	} {
		for _, dryRun := range []bool{true, false} {
			_, err := f.orch.Clean(context.Background(), domain.CleanRequest{
				Path:      dir,
				DryRun:    dryRun,
				Known:     true,
				Protected: f.layout.ProtectedDirs(),
			})
			require.ErrorIs(t, err, domain.ErrProtectedPath, dir)
		}
	}

	assert.FileExists(t, source)
	assert.FileExists(t, filepath.Join(sample, "Template.cpp"))
	assert.FileExists(t, filepath.Join(sample, "build", "Linux", "Makefile"))
}

func TestClean_SourceTreeWithoutLayoutSurvives(t *testing.T) {
	f := newFixture(t)
	source := filepath.Join(f.layout.EngineSourceDir(), "engine.cpp")
	writeFile(t, source, "int main() {}\n")

	_, err := f.orch.Clean(context.Background(), domain.CleanRequest{Path: f.layout.EngineSourceDir()})
	require.ErrorIs(t, err, domain.ErrNotBuildDir)
	assert.FileExists(t, source)
}

func TestClean_RequiresBuildMarker(t *testing.T) {
	f := newFixture(t)
	docs := filepath.Join(f.layout.Root, "docs")
	writeFile(t, filepath.Join(docs, "index.md"), "# docs")

	_, err := f.clean(docs, false)
	require.ErrorIs(t, err, domain.ErrNotBuildDir)
	assert.FileExists(t, filepath.Join(docs, "index.md"))

	out := filepath.Join(f.layout.Root, "out")
	writeFile(t, filepath.Join(out, "CMakeCache.txt"), "")

	report, err := f.clean(out, false)
	require.NoError(t, err)
	assert.Equal(t, []string{out}, report.Removed)
	assert.NoDirExists(t, out)
}

func TestRunExecutable(t *testing.T) {
	t.Run("missing executable", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.orch.RunExecutable(context.Background(), filepath.Join(f.layout.Root, "nope"), domain.Linux)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrExecutableNotFound)
	})

	t.Run("native propagates exit code", func(t *testing.T) {
		f := newFixture(t)
		exe := filepath.Join(f.layout.Root, "Sandbox", "build", "Linux", "Sandbox")
		writeFile(t, exe, "")

		f.runner.EXPECT().Run(domain.ProcessSpec{
			Executable:  exe,
			Dir:         filepath.Dir(exe),
			Interactive: true,
		}).Return(domain.ProcessOutcome{ExitCode: 3}, nil)

		code, err := f.orch.RunExecutable(context.Background(), exe, domain.Linux)
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})

	t.Run("windows binary runs through wine", func(t *testing.T) {
		f := newFixture(t)
		exe := filepath.Join(f.layout.Root, "Sandbox", "build", "Windows", "Sandbox.exe")
		writeFile(t, exe, "")

		f.runner.EXPECT().LookPath("wine").Return("/usr/bin/wine", nil)
		f.runner.EXPECT().Run(domain.ProcessSpec{
			Executable:  "/usr/bin/wine",
			Args:        []string{exe},
			Dir:         filepath.Dir(exe),
			Interactive: true,
		}).Return(domain.ProcessOutcome{}, nil)

		code, err := f.orch.RunExecutable(context.Background(), exe, domain.Windows)
		require.NoError(t, err)
		assert.Zero(t, code)
	})

	t.Run("missing wine", func(t *testing.T) {
		f := newFixture(t)
		exe := filepath.Join(f.layout.Root, "Sandbox.exe")
		writeFile(t, exe, "")

		f.runner.EXPECT().LookPath("wine").Return("", errors.New("executable file not found in $PATH"))

		_, err := f.orch.RunExecutable(context.Background(), exe, domain.Windows)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDependencyMissing)
	})

	t.Run("no runner for switch", func(t *testing.T) {
		f := newFixture(t)
		exe := filepath.Join(f.layout.Root, "Sandbox.nro")
		writeFile(t, exe, "")

		_, err := f.orch.RunExecutable(context.Background(), exe, domain.Switch)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoCrossRunner)
	})
}

func TestCheckDependencies(t *testing.T) {
	t.Run("missing tools", func(t *testing.T) {
		f := newFixture(t)
		f.runner.EXPECT().LookPath("cmake").Return("/usr/bin/cmake", nil)
		f.runner.EXPECT().LookPath("make").Return("", errors.New("not found"))

		err := f.orch.CheckDependencies(context.Background(), domain.Linux)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDependencyMissing)
	})

	t.Run("reports generator version", func(t *testing.T) {
		f := newFixture(t)
		f.runner.EXPECT().LookPath("cmake").Return("/usr/bin/cmake", nil)
		f.runner.EXPECT().LookPath("make").Return("/usr/bin/make", nil)
		f.runner.EXPECT().
			Run(domain.ProcessSpec{Executable: "cmake", Args: []string{"--version"}}).
			Return(domain.ProcessOutcome{Stdout: []byte("cmake version 3.28.3\n\nCMake suite maintained by Kitware\n")}, nil)
		f.runner.EXPECT().LookPath("wine").Return("", errors.New("not found"))

		err := f.orch.CheckDependencies(context.Background(), domain.Windows)
		require.NoError(t, err)

		logs := f.logs.String()
		assert.Contains(t, logs, "cmake version 3.28.3")
		assert.NotContains(t, logs, "Kitware")
		assert.Contains(t, logs, "wine not found")
	})

	t.Run("switch requires sdk", func(t *testing.T) {
		f := newFixture(t)
		t.Setenv("DEVKITPRO", "")
		f.runner.EXPECT().LookPath(gomock.Any()).Return("/usr/bin/tool", nil).Times(2)
		f.runner.EXPECT().Run(gomock.Any()).Return(domain.ProcessOutcome{}, nil)

		err := f.orch.CheckDependencies(context.Background(), domain.Switch)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDependencyMissing)
	})
}
