package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colours shared by all renderers.
var (
	Primary = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	Muted   = lipgloss.AdaptiveColor{Light: "#8a94a3", Dark: "#5c6b82"}
	Accent  = lipgloss.Color("#e57373")
	Success = lipgloss.Color("#8BC34A")
	Danger  = lipgloss.Color("#e53935")

	SkyColor   = lipgloss.Color("#ff9b00")
	GrassColor = lipgloss.Color("#00c800")
	SandColor  = lipgloss.Color("#e6c86e")
	WaterColor = lipgloss.Color("#2196F3")
	TreeColor  = lipgloss.Color("#2e7d32")
	WallColor  = lipgloss.Color("#616161")
)

// Styles holds the styled components used by the renderers.
type Styles struct {
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Accent lipgloss.Style
	Bar    lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style

	Wall  lipgloss.Style
	Floor lipgloss.Style
	Tree  lipgloss.Style
	Grass lipgloss.Style
	Sand  lipgloss.Style
	Water lipgloss.Style
	Path  lipgloss.Style
	Sky   lipgloss.Style
}

// DefaultStyles returns the workshop styles.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(Muted),
		Bold:   lipgloss.NewStyle().Bold(true),
		Accent: lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Bar:    lipgloss.NewStyle().Foreground(Primary),
		Good:   lipgloss.NewStyle().Foreground(Success).Bold(true),
		Bad:    lipgloss.NewStyle().Foreground(Danger).Bold(true),

		Wall:  lipgloss.NewStyle().Foreground(WallColor),
		Floor: lipgloss.NewStyle().Foreground(Muted),
		Tree:  lipgloss.NewStyle().Foreground(TreeColor).Bold(true),
		Grass: lipgloss.NewStyle().Foreground(GrassColor),
		Sand:  lipgloss.NewStyle().Foreground(SandColor),
		Water: lipgloss.NewStyle().Foreground(WaterColor),
		Path:  lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Sky:   lipgloss.NewStyle().Foreground(SkyColor),
	}
}
