package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a static table with a title row.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates an empty table.
func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers}
}

// AddRow appends a row; extra cells beyond the headers are dropped.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table. Columns are padded to their widest cell.
func (t *Table) View(st Styles) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(st.Title.Render(t.Title))
		sb.WriteString("\n")
	}
	writeRow := func(cells []string, style lipgloss.Style) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				sb.WriteString(st.Muted.Render(" | "))
			}
			sb.WriteString(style.Render(pad(cell, widths[i])))
		}
		sb.WriteString("\n")
	}
	writeRow(t.Headers, st.Bold)

	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += 3 * (len(widths) - 1)
	}
	sb.WriteString(st.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeRow(row, lipgloss.NewStyle())
	}
	return sb.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
