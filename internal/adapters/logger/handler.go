package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/vtrg/internal/ui/output"
	"go.trai.ch/vtrg/internal/ui/style"
)

// PrettyHandler is a custom slog.Handler that produces human-readable,
// colored output using the shared UI components.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	return newPrettyHandler(w, opts, output.ColorProfile)
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions, profile func() termenv.Profile) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.NewWithProfile(w, profile),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
// A message starting with a "[step]" label gets the label drawn in the step's
// palette color, matching the progress lines.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	glyph, color, faint := h.levelStyle(r.Level)

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})

	label, body := splitLabel(r.Message)
	if len(attrParts) > 0 {
		body += " " + strings.Join(attrParts, " ")
	}

	var line strings.Builder
	if glyph != "" {
		line.WriteString(h.paint(glyph+" ", color, faint))
	}
	if label != "" {
		step := strings.Trim(label, "[]")
		line.WriteString(h.paint(label, h.out.Color(string(style.LabelColor(step))), faint))
	}
	line.WriteString(h.paint(body, color, faint))
	line.WriteString("\n")

	_, err := h.out.WriteString(line.String())
	return err
}

func (h *PrettyHandler) levelStyle(level slog.Level) (glyph string, color termenv.Color, faint bool) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, h.out.Color(string(style.Red)), false
	case level >= slog.LevelWarn:
		return style.Warning, h.out.Color(string(style.Yellow)), false
	case level >= LevelSuccess:
		return style.Check, h.out.Color(string(style.Green)), false
	case level >= slog.LevelInfo:
		return "", h.out.Color(string(style.Slate)), false
	default:
		return "", h.out.Color(string(style.Slate)), true
	}
}

func (h *PrettyHandler) paint(text string, color termenv.Color, faint bool) string {
	if text == "" {
		return ""
	}
	styled := h.out.String(text).Foreground(color)
	if faint {
		styled = styled.Faint()
	}
	return styled.String()
}

// splitLabel separates a leading "[step]" from msg.
func splitLabel(msg string) (label, rest string) {
	if !strings.HasPrefix(msg, "[") {
		return "", msg
	}
	end := strings.Index(msg, "]")
	if end <= 1 || strings.ContainsAny(msg[1:end], " \n") {
		return "", msg
	}
	return msg[:end+1], msg[end+1:]
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// formatAttr formats a single attribute for output.
// If a group is set, the key is prefixed with the group name.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
