package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ProjectFileName is the optional project manifest at the repository root.
	ProjectFileName = "vtrg.yaml"

	// SettingsDirName is the per-user settings directory below the home directory.
	SettingsDirName = ".vtrg"

	// SettingsFileName is the per-user settings file inside SettingsDirName.
	SettingsFileName = "config.json"

	// MakefileName marks a configured build directory.
	MakefileName = "Makefile"

	// WindowsToolchainFile is the CMake toolchain used to build Windows binaries on Linux.
	WindowsToolchainFile = "mingw-w64-x86_64.cmake"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout locates the engine, samples and build directories of a Vantor checkout.
// All fields except Root are relative to Root.
type Layout struct {
	Root         string
	EngineDir    string
	BuildDir     string
	SamplesDir   string
	SandboxDir   string
	ToolchainDir string
	ResourceDirs []string
}

// DefaultLayout returns the standard checkout layout rooted at root.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:         root,
		EngineDir:    "Vantor",
		BuildDir:     "Build",
		SamplesDir:   "Samples",
		SandboxDir:   "Sandbox",
		ToolchainDir: filepath.Join("Tools", "Toolchains"),
		ResourceDirs: []string{"resources", "shaders", "lib"},
	}
}

// EngineSourceDir is the CMake source directory of the engine.
func (l Layout) EngineSourceDir() string {
	return filepath.Join(l.Root, l.EngineDir, "Source")
}

// SourceDir returns the CMake source directory of target.
func (l Layout) SourceDir(target BuildTarget) string {
	switch target.Kind {
	case TargetSample:
		return filepath.Join(l.Root, l.SamplesDir, target.Name)
	case TargetSandbox:
		return filepath.Join(l.Root, l.SandboxDir)
	default:
		return l.EngineSourceDir()
	}
}

// OutputDir returns the build directory of target for platform.
func (l Layout) OutputDir(target BuildTarget, platform Platform) string {
	switch target.Kind {
	case TargetSample:
		return filepath.Join(l.Root, l.SamplesDir, target.Name, "build", string(platform))
	case TargetSandbox:
		return filepath.Join(l.Root, l.SandboxDir, "build", string(platform))
	default:
		return filepath.Join(l.Root, l.BuildDir, string(platform))
	}
}

// ExecutablePath returns the binary a runnable target produces, or "" for the engine.
func (l Layout) ExecutablePath(target BuildTarget, platform Platform) string {
	if !target.Runnable() {
		return ""
	}
	return filepath.Join(l.OutputDir(target, platform), target.Name+platform.ExecutableSuffix())
}

// ResourceRoot is the directory holding the engine's resource directories.
func (l Layout) ResourceRoot() string {
	return l.EngineSourceDir()
}

// IncludeDir collects the public engine headers after an engine build.
func (l Layout) IncludeDir() string {
	return filepath.Join(l.Root, l.BuildDir, "include")
}

// ToolchainFile returns the path of the named CMake toolchain file.
func (l Layout) ToolchainFile(name string) string {
	return filepath.Join(l.Root, l.ToolchainDir, name)
}

// BuildDirs returns every existing build directory of the checkout in a stable order.
func (l Layout) BuildDirs() []string {
	candidates := []string{filepath.Join(l.Root, l.BuildDir)}

	samples, _ := filepath.Glob(filepath.Join(l.Root, l.SamplesDir, "*", "build"))
	candidates = append(candidates, samples...)
	candidates = append(candidates, filepath.Join(l.Root, l.SandboxDir, "build"))

	dirs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			dirs = append(dirs, c)
		}
	}
	return dirs
}

// ProtectedDirs returns the directories a clean must never remove: the project
// root and every source tree below it.
func (l Layout) ProtectedDirs() []string {
	dirs := []string{
		l.Root,
		filepath.Join(l.Root, l.EngineDir),
		l.EngineSourceDir(),
		filepath.Join(l.Root, l.SamplesDir),
		filepath.Join(l.Root, l.SandboxDir),
		filepath.Join(l.Root, l.ToolchainDir),
	}
	samples, _ := filepath.Glob(filepath.Join(l.Root, l.SamplesDir, "*"))
	for _, s := range samples {
		if info, err := os.Stat(s); err == nil && info.IsDir() {
			dirs = append(dirs, s)
		}
	}
	return dirs
}

// InBuildDir reports whether path lies inside one of BuildDirs.
func (l Layout) InBuildDir(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range l.BuildDirs() {
		if IsWithin(dir, abs) {
			return true
		}
	}
	return false
}

// IsWithin reports whether path is parent or lies below it.
func IsWithin(parent, path string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// DefaultSettingsPath returns the per-user settings file path.
// It falls back to a path relative to the working directory when no home directory is known.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(SettingsDirName, SettingsFileName)
	}
	return filepath.Join(home, SettingsDirName, SettingsFileName)
}
