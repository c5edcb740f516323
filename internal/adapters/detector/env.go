// Package detector provides environment detection for progress rendering.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode represents how progress is rendered.
type OutputMode int

const (
	// ModeAnimated redraws a status line in place.
	ModeAnimated OutputMode = iota
	// ModePlain only prints final status lines.
	ModePlain
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsCI reports whether the CI environment variable marks a CI run.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// DetectMode returns the rendering mode for progress written to w.
// Animation requires w to be a terminal outside CI.
func DetectMode(w io.Writer) OutputMode {
	f, ok := w.(fdWriter)
	if !ok {
		return ModePlain
	}

	isTTY := term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int

	if !isTTY || IsCI() {
		return ModePlain
	}
	return ModeAnimated
}
