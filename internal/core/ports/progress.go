package ports

import "context"

// ProgressIndicator renders the status of a running process.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressIndicator interface {
	// Track blocks until handle reports an exit code, then writes exactly one
	// status line. It returns early without a status line when ctx is cancelled.
	Track(ctx context.Context, label string, handle ProcessHandle)
}
