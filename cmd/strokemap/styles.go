package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	comboStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderTable lays rows out in left-aligned columns. The first row is the
// header. style, when set, styles the cell at (row, col); the header row
// always uses headerStyle.
func renderTable(rows [][]string, style func(row, col int) lipgloss.Style) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, 0, len(row))
		for c, cell := range row {
			s := lipgloss.NewStyle()
			switch {
			case r == 0:
				s = headerStyle
			case style != nil:
				s = style(r, c)
			}
			if c < len(row)-1 {
				s = s.Width(widths[c] + 2)
			}
			cells = append(cells, s.Render(cell))
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
