package domain

import "strings"

// ProcessSpec describes a child process to launch.
type ProcessSpec struct {
	Executable string
	Args       []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra KEY=VALUE pairs appended to the inherited environment.
	Env []string
	// Interactive connects the child to the terminal instead of capturing its output.
	Interactive bool
}

// ProcessOutcome is the terminal state of a child process.
type ProcessOutcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Succeeded reports whether the process exited with code zero.
func (o ProcessOutcome) Succeeded() bool {
	return o.ExitCode == 0
}

// Diagnostics returns the text that explains a failure: stderr when the
// process wrote any, otherwise stdout.
func (o ProcessOutcome) Diagnostics() string {
	if text := trimOutput(o.Stderr); text != "" {
		return text
	}
	return trimOutput(o.Stdout)
}

func trimOutput(b []byte) string {
	return strings.TrimRight(string(b), " \t\r\n")
}
