package domain

import "strings"

// BuildType selects the CMake build configuration.
type BuildType string

const (
	// Debug builds with symbols and without optimisation.
	Debug BuildType = "Debug"
	// Release builds optimised binaries.
	Release BuildType = "Release"
)

// ParseBuildType accepts "debug" or "release" in any case. Anything else yields Release.
func ParseBuildType(s string) BuildType {
	if strings.EqualFold(s, string(Debug)) {
		return Debug
	}
	return Release
}

// BuildRequest is one parsed build invocation.
type BuildRequest struct {
	Target BuildTarget
	// Platform is the requested platform name. Empty means the host platform.
	Platform  string
	BuildType BuildType
	// CleanDir is cleaned before configuring when set.
	CleanDir string
	// Jobs is the parallelism passed to the build driver. Zero or less lets the driver decide.
	Jobs int
	// ShowOutput logs captured toolchain stdout at info level instead of debug.
	ShowOutput bool
}

// BuildResult describes a successful build.
type BuildResult struct {
	Platform   Platform
	OutputDir  string
	Executable string
}

// Step is one stage of the build state machine.
type Step string

const (
	// StepResolve validates the platform, target and toolchain.
	StepResolve Step = "resolve"
	// StepConfigure runs the configuration generator.
	StepConfigure Step = "configure"
	// StepCompile runs the build driver.
	StepCompile Step = "compile"
	// StepFinalize copies resources into the output directory.
	StepFinalize Step = "finalize"
)

// Steps returns the build steps in execution order.
func Steps() []Step {
	return []Step{StepResolve, StepConfigure, StepCompile, StepFinalize}
}
