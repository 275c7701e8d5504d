// Package style provides shared styling primitives, colors and icons,
// for consistent presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Blue   = lipgloss.Color("#3B82F6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// Event line styles used by the linear renderer.
var (
	PathStyle  = lipgloss.NewStyle().Foreground(Teal)
	FaintStyle = lipgloss.NewStyle().Foreground(Slate)
	OKStyle    = lipgloss.NewStyle().Foreground(Green)
	ErrStyle   = lipgloss.NewStyle().Foreground(Red)
)
