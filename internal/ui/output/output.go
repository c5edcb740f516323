// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/muesli/termenv"
)

var colorDisabled atomic.Bool

// SetColorEnabled toggles colored output process-wide, for example from --no-color.
func SetColorEnabled(enable bool) {
	colorDisabled.Store(!enable)
}

// ColorProfile returns the color profile to use for interactive environments.
// It returns Ascii when NO_COLOR is set or color was disabled,
// otherwise it detects the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if colorDisabled.Load() || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the color profile for CI/non-interactive environments.
// It returns Ascii when NO_COLOR is set or color was disabled,
// otherwise ANSI for broad compatibility with CI systems.
func ColorProfileANSI() termenv.Profile {
	if colorDisabled.Load() || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a new termenv.Output with the specific profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a new termenv.Output with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
