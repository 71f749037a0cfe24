package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatches draws one coloured block per palette entry followed by its hex code.
func Swatches(palette []color.RGBA) string {
	var sb strings.Builder
	for _, c := range palette {
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    "))
		sb.WriteString(" ")
		sb.WriteString(hex)
		sb.WriteString("\n")
	}
	return sb.String()
}
