// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/vtrg/internal/core/domain"

// ProcessRunner launches external processes.
//
//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Start spawns the process described by spec and returns immediately.
	// It returns an error wrapping domain.ErrProcessLaunch when the executable
	// cannot be located or spawned.
	Start(spec domain.ProcessSpec) (ProcessHandle, error)

	// Run starts the process and waits for it to exit.
	Run(spec domain.ProcessSpec) (domain.ProcessOutcome, error)

	// LookPath resolves name on the search path.
	LookPath(name string) (string, error)
}

// ProcessHandle observes a running child process.
type ProcessHandle interface {
	// Poll returns the exit code once the process has exited.
	Poll() (exitCode int, exited bool)

	// Done is closed when the process has exited.
	Done() <-chan struct{}

	// Wait blocks until the process exits and returns its outcome.
	Wait() domain.ProcessOutcome
}
