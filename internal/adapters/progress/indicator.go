// Package progress renders a status line for running toolchain processes.
package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/vtrg/internal/adapters/detector"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/vtrg/internal/ui/output"
	"go.trai.ch/vtrg/internal/ui/style"
)

const (
	// DefaultInterval is the polling period of Track.
	DefaultInterval = 80 * time.Millisecond

	maxDots = 6
)

// Indicator implements ports.ProgressIndicator.
type Indicator struct {
	w        io.Writer
	interval time.Duration
	animate  bool
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithInterval overrides the polling interval.
func WithInterval(d time.Duration) Option {
	return func(i *Indicator) {
		i.interval = d
	}
}

// WithAnimation forces animation on or off regardless of the terminal.
func WithAnimation(enable bool) Option {
	return func(i *Indicator) {
		i.animate = enable
	}
}

// NewIndicator creates an Indicator writing to w.
// Animation is enabled when w is an interactive terminal outside CI.
func NewIndicator(w io.Writer, opts ...Option) *Indicator {
	if w == nil {
		w = os.Stderr
	}

	i := &Indicator{
		w:        w,
		interval: DefaultInterval,
		animate:  detector.DetectMode(w) == detector.ModeAnimated,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Track polls handle until it reports an exit code, then writes one status line.
func (i *Indicator) Track(ctx context.Context, label string, handle ports.ProcessHandle) {
	out := output.NewWithProfile(i.w, output.ColorProfileANSI)
	prefix := i.prefix(out, label)
	start := time.Now()

	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		if code, exited := handle.Poll(); exited {
			i.finish(out, prefix, code, time.Since(start))
			return
		}

		if i.animate {
			dots := strings.Repeat(style.Bullet, frame%(maxDots+1))
			_, _ = fmt.Fprintf(i.w, "\r%s Running%s", prefix, dots)
			out.ClearLineRight()
		}

		select {
		case <-ctx.Done():
			if i.animate {
				_, _ = io.WriteString(i.w, "\r")
				out.ClearLine()
			}
			return
		case <-ticker.C:
		}
	}
}

func (i *Indicator) finish(out *termenv.Output, prefix string, code int, elapsed time.Duration) {
	if i.animate {
		_, _ = io.WriteString(i.w, "\r")
		out.ClearLine()
	}

	elapsed = elapsed.Round(time.Millisecond)
	if code == 0 {
		symbol := out.String(style.Check).Foreground(out.Color(string(style.Green))).String()
		_, _ = fmt.Fprintf(i.w, "%s %s Completed in %v\n", prefix, symbol, elapsed)
		return
	}

	symbol := out.String(style.Cross).Foreground(out.Color(string(style.Red))).String()
	_, _ = fmt.Fprintf(i.w, "%s %s Failed after %v (exit code %d)\n", prefix, symbol, elapsed, code)
}

// prefix renders "[label]" in the label's palette color.
func (i *Indicator) prefix(out *termenv.Output, label string) string {
	c := style.LabelColor(label)
	return out.String("[" + label + "]").Foreground(out.Color(string(c))).String()
}

var _ ports.ProgressIndicator = (*Indicator)(nil)
