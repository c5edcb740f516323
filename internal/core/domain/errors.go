package domain

import "go.trai.ch/zerr"

// Fail returns an error of the given class. errors.Is(err, class) holds for the
// result, and cause, when non-nil, is kept as its logged cause and stays
// reachable with errors.Is and errors.As. Metadata can be attached with zerr.With.
func Fail(class, cause error) error {
	if cause == nil {
		return zerr.Wrap(class, "")
	}
	return &classified{class: class, cause: cause}
}

// classified pairs a sentinel with the concrete error behind it.
type classified struct {
	class error
	cause error
}

func (e *classified) Error() string {
	return e.class.Error() + ": " + e.cause.Error()
}

// Message returns the class message without the cause.
func (e *classified) Message() string {
	return e.class.Error()
}

// Cause returns the concrete error.
func (e *classified) Cause() error {
	return e.cause
}

func (e *classified) Unwrap() []error {
	return []error{e.class, e.cause}
}

var (
	// ErrUnsupportedPlatform is returned when a requested platform is not Windows, Linux or Switch.
	ErrUnsupportedPlatform = zerr.New("unsupported platform, expected one of Windows, Linux, Switch")

	// ErrUnsupportedHost is returned when the host operating system cannot be mapped to a platform.
	ErrUnsupportedHost = zerr.New("unsupported host operating system")

	// ErrNoCrossToolchain is returned when no toolchain exists for the host and target pair.
	ErrNoCrossToolchain = zerr.New("no cross-compilation toolchain for host and target")

	// ErrNoCrossRunner is returned when a binary for another platform cannot be run on this host.
	ErrNoCrossRunner = zerr.New("cannot run target platform binaries on this host")

	// ErrDependencyMissing is returned when a required external executable is not on the search path.
	ErrDependencyMissing = zerr.New("required executable not found")

	// ErrExecutableNotFound is returned when a built executable does not exist.
	ErrExecutableNotFound = zerr.New("executable not found")

	// ErrProcessLaunch is returned when a child process cannot be located or spawned.
	ErrProcessLaunch = zerr.New("failed to launch process")

	// ErrConfigureFailed is returned when the configuration generator exits non-zero.
	ErrConfigureFailed = zerr.New("configure step failed")

	// ErrCompileFailed is returned when the build driver exits non-zero.
	ErrCompileFailed = zerr.New("compile step failed")

	// ErrCleanFailed is returned when the build driver's clean target exits non-zero.
	ErrCleanFailed = zerr.New("clean target failed")

	// ErrSourceDirNotFound is returned when the source directory of a target is missing.
	ErrSourceDirNotFound = zerr.New("source directory not found")

	// ErrToolchainNotFound is returned when the selected cross-compilation toolchain file is missing.
	ErrToolchainNotFound = zerr.New("toolchain file not found")

	// ErrNotADirectory is returned when a path that must be a directory is a file.
	ErrNotADirectory = zerr.New("path is not a directory")

	// ErrProtectedPath is returned when a clean targets the project root, a source tree or one of their parents.
	ErrProtectedPath = zerr.New("refusing to remove a project or source directory")

	// ErrNotBuildDir is returned when a clean targets a directory that does not look like a build directory.
	ErrNotBuildDir = zerr.New("not a build directory")

	// ErrOutputDirCreateFailed is returned when the build output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrResourceCopyFailed is returned when resources cannot be copied into the output directory.
	ErrResourceCopyFailed = zerr.New("failed to copy resources")

	// ErrRemoveFailed is returned when a build artifact cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove path")

	// ErrSettingNotFound is returned when a settings key has no value and no default.
	ErrSettingNotFound = zerr.New("setting not found")

	// ErrSettingsWriteFailed is returned when the settings file cannot be written.
	ErrSettingsWriteFailed = zerr.New("failed to write settings file")

	// ErrInvalidSettingKey is returned when a settings key would overwrite a section.
	ErrInvalidSettingKey = zerr.New("invalid setting key")

	// ErrProjectReadFailed is returned when the project manifest cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project manifest")

	// ErrProjectParseFailed is returned when the project manifest cannot be parsed.
	ErrProjectParseFailed = zerr.New("failed to parse project manifest")

	// ErrFormatCheckFailed is returned when check mode finds unformatted files.
	ErrFormatCheckFailed = zerr.New("files are not formatted")

	// ErrFormatFailed is returned when the formatter exits non-zero on a file.
	ErrFormatFailed = zerr.New("formatter failed")

	// ErrUnknownSample is returned when a sample name is not in KnownSamples.
	ErrUnknownSample = zerr.New("unknown sample, expected one of TestFramework, Template")

	// ErrUnknownCommand is returned when the subcommand is not registered.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrInvalidUsage marks errors caused by malformed command lines.
	ErrInvalidUsage = zerr.New("invalid usage")

	// ErrNothingToRun is returned when --run is requested for a target without an executable.
	ErrNothingToRun = zerr.New("target does not produce an executable")
)
