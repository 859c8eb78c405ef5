package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

// dieStyle colours text with a die's colour
func dieStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// table renders rows under a title with aligned columns and an optional
// footer row
type table struct {
	title   string
	headers []string
	rows    [][]string
	footer  []string
}

func (t *table) addRow(row ...string) {
	t.rows = append(t.rows, row)
}

func (t *table) render() string {
	widths := make([]int, len(t.headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}
	measure(t.footer)

	line := func(style lipgloss.Style, row []string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = style.Width(widths[i] + 2).Render(cell)
		}
		return strings.TrimRight(strings.Join(cells, mutedStyle.Render("|")), " ")
	}

	var sb strings.Builder
	if t.title != "" {
		sb.WriteString(titleStyle.Render(t.title))
		sb.WriteString("\n")
	}
	sb.WriteString(line(headerStyle, t.headers))
	sb.WriteString("\n")
	for _, row := range t.rows {
		sb.WriteString(line(cellStyle, row))
		sb.WriteString("\n")
	}
	if len(t.footer) > 0 {
		sb.WriteString(line(headerStyle, t.footer))
		sb.WriteString("\n")
	}
	return sb.String()
}
