// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Teal   = lipgloss.Color("#14B8A6")
	Sky    = lipgloss.Color("#0EA5E9")
	Rose   = lipgloss.Color("#F43F5E")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// LabelPalette holds the colors used to tell step labels apart.
var LabelPalette = []lipgloss.Color{Iris, Teal, Sky, Rose}

// LabelColor picks the palette entry for a step label from its hash, so a
// step keeps its color in every line and across runs.
func LabelColor(label string) lipgloss.Color {
	return LabelPalette[xxhash.Sum64String(label)%uint64(len(LabelPalette))]
}

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Bullet  = "•"
	Arrow   = "→"
)
