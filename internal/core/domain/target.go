package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// TargetKind discriminates the BuildTarget variants.
type TargetKind uint8

const (
	// TargetInternal builds the engine library itself.
	TargetInternal TargetKind = iota
	// TargetSample builds one of the known sample projects.
	TargetSample
	// TargetSandbox builds the sandbox project.
	TargetSandbox
)

// String returns a lowercase name for the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetInternal:
		return "internal"
	case TargetSample:
		return "sample"
	case TargetSandbox:
		return "sandbox"
	default:
		return "unknown"
	}
}

// SandboxName is the project name of the sandbox target.
const SandboxName = "Sandbox"

// KnownSamples lists the sample projects shipped with the engine.
var KnownSamples = []string{"TestFramework", "Template"}

// IsKnownSample reports whether name is one of the KnownSamples.
func IsKnownSample(name string) bool {
	return slices.Contains(KnownSamples, name)
}

// BuildTarget is what a build produces: the engine (optionally a single module of it),
// a sample, or the sandbox.
type BuildTarget struct {
	Kind TargetKind
	// Name is the module for internal targets (may be empty) and the project
	// name for samples and the sandbox.
	Name string
}

// InternalTarget returns a target for the engine library. An empty module builds everything.
func InternalTarget(module string) BuildTarget {
	return BuildTarget{Kind: TargetInternal, Name: module}
}

// SampleTarget returns a target for the named sample.
func SampleTarget(name string) (BuildTarget, error) {
	if !IsKnownSample(name) {
		return BuildTarget{}, zerr.With(Fail(ErrUnknownSample, nil), "sample", name)
	}
	return BuildTarget{Kind: TargetSample, Name: name}, nil
}

// SandboxTarget returns the sandbox target.
func SandboxTarget() BuildTarget {
	return BuildTarget{Kind: TargetSandbox, Name: SandboxName}
}

// Runnable reports whether the target produces an executable.
func (t BuildTarget) Runnable() bool {
	return t.Kind != TargetInternal
}

// String describes the target for log lines.
func (t BuildTarget) String() string {
	switch t.Kind {
	case TargetInternal:
		if t.Name == "" {
			return "engine"
		}
		return "engine module " + t.Name
	case TargetSample:
		return "sample " + t.Name
	case TargetSandbox:
		return "sandbox"
	default:
		return "unknown target"
	}
}
