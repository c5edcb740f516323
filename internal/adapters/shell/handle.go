package shell

import (
	"bytes"
	"os/exec"
	"sync"

	"go.trai.ch/vtrg/internal/core/domain"
)

// handle tracks a started exec.Cmd.
type handle struct {
	stdout bytes.Buffer
	stderr bytes.Buffer

	done chan struct{}

	mu      sync.Mutex
	exited  bool
	outcome domain.ProcessOutcome
}

func newHandle() *handle {
	return &handle{done: make(chan struct{})}
}

// wait reaps the process and publishes its outcome.
func (h *handle) wait(cmd *exec.Cmd) {
	err := cmd.Wait()

	h.mu.Lock()
	h.exited = true
	h.outcome = domain.ProcessOutcome{
		ExitCode: exitCode(err),
		Stdout:   h.stdout.Bytes(),
		Stderr:   h.stderr.Bytes(),
	}
	h.mu.Unlock()

	close(h.done)
}

// Poll returns the exit code once the process has exited.
func (h *handle) Poll() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outcome.ExitCode, h.exited
}

// Done is closed when the process has exited.
func (h *handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the process exits.
func (h *handle) Wait() domain.ProcessOutcome {
	<-h.done

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outcome
}
